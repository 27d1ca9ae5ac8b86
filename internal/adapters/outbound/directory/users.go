// Package directory implements the user, supplier and employee directories on files in
// the data directory.
package directory

import (
	"bufio"
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tillbook/tillbook/internal/adapters/outbound/filestore"
	"github.com/tillbook/tillbook/internal/domain"
)

// UserFile reads users.txt, one "username,password,role" record per line. Lines with
// fewer than three fields or an unknown role are skipped.
type UserFile struct {
	path string
}

func NewUserFile(path string) *UserFile { return &UserFile{path: path} }

var _ domain.UserDirectory = (*UserFile)(nil)

func (u *UserFile) List() ([]domain.User, error) {
	data, found, err := filestore.ReadOptional(u.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", u.path, err)
	}
	if !found {
		return nil, nil
	}

	var users []domain.User
	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) < 3 {
			slog.Warn("skipping malformed user record", "path", u.path, "line", lineNo)
			continue
		}
		role, ok := domain.ParseRole(parts[2])
		if !ok {
			slog.Warn("skipping user with unknown role", "path", u.path, "line", lineNo, "role", parts[2])
			continue
		}
		users = append(users, domain.User{
			Username: strings.TrimSpace(parts[0]),
			Password: strings.TrimSpace(parts[1]),
			Role:     role,
		})
	}
	return users, sc.Err()
}

// Find looks a user up by name, ignoring case.
func (u *UserFile) Find(username string) (domain.User, bool, error) {
	users, err := u.List()
	if err != nil {
		return domain.User{}, false, err
	}
	for _, user := range users {
		if strings.EqualFold(user.Username, username) {
			return user, true, nil
		}
	}
	return domain.User{}, false, nil
}
