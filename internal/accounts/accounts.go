package accounts

import (
	"bufio"
	"os"
	"strings"

	apperrors "github.com/orgball2608/nitter-relay-telegram-bot/pkg/errors"
)

// Read returns the account identifiers listed in the file at path, one per
// line, in file order. Blank lines and lines starting with '#' are ignored.
func Read(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(err, "open accounts file")
	}
	defer f.Close()

	var usernames []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		usernames = append(usernames, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.Wrap(err, "read accounts file")
	}
	return usernames, nil
}
