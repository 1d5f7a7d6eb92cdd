package credential

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
	"unicode"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/credential"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
)

// initialPasswordLength is the length of generated one-time passwords.
const initialPasswordLength = 16

// passwordAlphabet deliberately omits characters that are easy to
// misread when the secret is handed over out of band (0/O, 1/l/I).
const passwordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

type IssuerImpl struct {
	prefix string
	employee.EmployeeRepository
}

func NewIssuer(prefix string, employeeRepo employee.EmployeeRepository) credential.Issuer {
	return &IssuerImpl{
		prefix:             prefix,
		EmployeeRepository: employeeRepo,
	}
}

// GenerateLoginID implements credential.Issuer.
func (i *IssuerImpl) GenerateLoginID(ctx context.Context, firstName, lastName string, dateOfJoining time.Time) (string, error) {
	count, err := i.EmployeeRepository.CountByJoiningYear(ctx, dateOfJoining.Year())
	if err != nil {
		return "", fmt.Errorf("failed to count employees for serial: %w", err)
	}

	serial := count + 1
	return fmt.Sprintf("%s%s%s%04d%04d",
		i.prefix,
		namePart(firstName),
		namePart(lastName),
		dateOfJoining.Year(),
		serial,
	), nil
}

// GenerateInitialPassword implements credential.Issuer.
func (i *IssuerImpl) GenerateInitialPassword() (string, error) {
	secret := make([]byte, initialPasswordLength)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for j := range secret {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate password: %w", err)
		}
		secret[j] = passwordAlphabet[n.Int64()]
	}
	return string(secret), nil
}

// namePart extracts up to two letters from a name, uppercased. Non-letter
// runes (hyphens, apostrophes, spaces) are skipped so "O'Neil" yields
// "ON".
func namePart(name string) string {
	var b strings.Builder
	taken := 0
	for _, r := range name {
		if !unicode.IsLetter(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
		taken++
		if taken == 2 {
			break
		}
	}
	return b.String()
}
