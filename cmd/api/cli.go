package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	userdomain "github.com/BruksfildServices01/odutech/internal/domain/user"
	ucUser "github.com/BruksfildServices01/odutech/internal/usecase/user"
)

func prompt(sc *bufio.Scanner, out io.Writer, label string) (string, error) {
	fmt.Fprintf(out, "%s: ", label)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(sc.Text()), nil
}

func runAddUser(ctx context.Context, accounts *ucUser.Accounts, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)

	var creds userdomain.Credentials
	var err error
	if creds.Username, err = prompt(sc, out, "Username"); err != nil {
		return err
	}
	if creds.Email, err = prompt(sc, out, "E-mail"); err != nil {
		return err
	}
	if creds.Password, err = prompt(sc, out, "Senha"); err != nil {
		return err
	}

	u, err := accounts.Register(ctx, creds)
	if err != nil {
		return fmt.Errorf("add user: %w", err)
	}

	fmt.Fprintf(out, "Usuário %s criado (id %d).\n", u.Username, u.ID)
	return nil
}

func runListUsers(ctx context.Context, accounts *ucUser.Accounts, out io.Writer) error {
	users, err := accounts.List(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	if len(users) == 0 {
		fmt.Fprintln(out, "Nenhum usuário cadastrado.")
		return nil
	}
	for _, u := range users {
		fmt.Fprintf(out, "%d\t%s\t%s\t%s\n", u.ID, u.Username, u.Email, u.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

func runDeleteUser(ctx context.Context, accounts *ucUser.Accounts, username string, out io.Writer) error {
	if err := accounts.Delete(ctx, strings.TrimSpace(username)); err != nil {
		return fmt.Errorf("delete user %s: %w", username, err)
	}
	fmt.Fprintf(out, "Usuário %s removido.\n", username)
	return nil
}
