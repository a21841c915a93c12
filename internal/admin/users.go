package admin

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
	"github.com/dmitrijs2005/minutesfolio/internal/server/services"
	"github.com/dmitrijs2005/minutesfolio/internal/shared"
)

// generatedPasswordBytes is the entropy of a password generated for an
// empty answer; it prints as twice as many hex characters.
const generatedPasswordBytes = 12

var errPasswordMismatch = errors.New("passwords do not match")

type UserCreator interface {
	Create(ctx context.Context, in services.RegisterInput) (*models.User, error)
}

func (a *App) createUser(ctx context.Context) error {
	fullName, err := GetSimpleText(a.in, "Full name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.in, "Email", a.out)
	if err != nil {
		return err
	}
	username, err := GetSimpleText(a.in, "Username (empty to derive from email)", a.out)
	if err != nil {
		return err
	}
	role, err := GetTextOr(a.in, "Role", a.config.AdminRole, a.out)
	if err != nil {
		return err
	}

	password, generated, err := a.readNewPassword()
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	u, err := a.users.Create(ctx, services.RegisterInput{
		FullName: fullName,
		Username: username,
		Email:    email,
		Password: string(password),
		Role:     role,
	})
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	fmt.Fprintf(a.out, "Created user %d (%s) with role %s\n", u.ID, u.Username, u.Role)
	if generated {
		fmt.Fprintf(a.out, "Generated password: %s\n", password)
	}
	return nil
}

// readNewPassword asks for a password twice. An empty first answer
// generates a random one instead.
func (a *App) readNewPassword() ([]byte, bool, error) {
	pw, err := GetPassword("Password (empty to generate)", a.out)
	if err != nil {
		return nil, false, err
	}

	if len(pw) == 0 {
		s, err := shared.MakeRandHexString(generatedPasswordBytes)
		if err != nil {
			return nil, false, err
		}
		return []byte(s), true, nil
	}

	confirm, err := GetPassword("Repeat password", a.out)
	if err != nil {
		shared.WipeByteArray(pw)
		return nil, false, err
	}
	defer shared.WipeByteArray(confirm)

	if !bytes.Equal(pw, confirm) {
		shared.WipeByteArray(pw)
		return nil, false, errPasswordMismatch
	}
	return pw, false, nil
}
