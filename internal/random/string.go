package random

const (
	letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"

	alphanumeric = letters + digits
)

// ASCIIString returns random alphanumeric string of length in range [minLen, maxLen).
// The first character is always a letter.
func ASCIIString(minLen, maxLen int) string {
	slen := Int(minLen, maxLen)
	if slen <= 0 {
		return ""
	}

	s := make([]byte, slen)
	s[0] = letters[rnd.Intn(len(letters))]
	for i := 1; i < slen; i++ {
		s[i] = alphanumeric[rnd.Intn(len(alphanumeric))]
	}
	return string(s)
}
