package prechecks

// DigitChecker requires at least one digit, so "17 agustus" and "Rp 50.000" pass.
type DigitChecker struct {
	message string
}

func NewDateTimeChecker() *DigitChecker {
	return &DigitChecker{message: "Format tanggal/waktu harus mengandung angka."}
}

func NewNumericChecker() *DigitChecker {
	return &DigitChecker{message: "Input harus mengandung nilai angka."}
}

func (c *DigitChecker) Check(in Input) *Rejection {
	if !hasDigit(in.Text) {
		return reject(ReasonMissingDigit, c.message)
	}
	return nil
}
