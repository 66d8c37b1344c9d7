package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// QuotaExceededError is an HTTP 429 from the provider. Callers should wait, not fix the request.
type QuotaExceededError struct {
	Model string
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("Model '%s' tidak dapat digunakan saat ini karena telah mencapai batas penggunaan (limit).", e.Model)
}

// UpstreamError is any other non-2xx reply.
type UpstreamError struct {
	Model      string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("Gagal menggunakan model '%s'. Server merespons dengan kode: %d.", e.Model, e.StatusCode)
	if e.Message != "" {
		msg += " Pesan: " + e.Message
	}
	return msg
}

// ServerSide reports a 5xx status.
func (e *UpstreamError) ServerSide() bool {
	return e.StatusCode >= 500
}

// TransportError covers connection, TLS and timeout failures.
type TransportError struct {
	Model string
	Err   error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Gagal menghubungi model '%s': %v", e.Model, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// ConfigError means the semantic stage cannot run at all, typically a missing credential.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("Konfigurasi validasi semantik tidak lengkap: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
