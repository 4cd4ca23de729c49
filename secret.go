package privfolio

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// passcodeEnv is the environment variable holding the access passcode.
const passcodeEnv = "PFT_PASSCODE"

// ErrNoPasscode is returned when no passcode was configured anywhere. The
// tool refuses to run without one; there is no open-by-default mode.
var ErrNoPasscode = errors.New("no passcode configured: set the " + passcodeEnv +
	" environment variable or add " + passcodeEnv + "=... to a .env file")

// Passcode returns the configured passcode, looking at the environment
// first, then at a .env file in the working directory.
func Passcode() (string, error) {
	if code := os.Getenv(passcodeEnv); code != "" {
		return code, nil
	}
	// .env is optional, a load failure just means it is absent
	_ = godotenv.Load()
	if code := os.Getenv(passcodeEnv); code != "" {
		return code, nil
	}
	return "", ErrNoPasscode
}
