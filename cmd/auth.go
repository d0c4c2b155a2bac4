package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/hiring-portal/internal/hiring"
	"github.com/spigell/hiring-portal/internal/secrets"
	"github.com/spigell/hiring-portal/internal/session"
)

const passwordEnv = "HIRING_PASSWORD"

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and keep the session for later commands",
	RunE:  run(login),
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account as a candidate or a recruiter",
	RunE:  run(register),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session",
	RunE: run(func(cmd *cobra.Command, _ []string, env *environment) error {
		if err := env.store.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "logged out")
		return nil
	}),
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE:  run(whoami),
}

func init() {
	for _, c := range []*cobra.Command{loginCmd, registerCmd} {
		c.Flags().String("email", "", "account email")
		c.Flags().String("password", "", "account password (prefer --password-file or "+passwordEnv+")")
		c.Flags().String("password-file", "", "file containing the account password")
	}

	registerCmd.Flags().String("username", "", "public user name")
	registerCmd.Flags().String("full-name", "", "full name")
	registerCmd.Flags().String("company", "", "company, for recruiters")
	registerCmd.Flags().String("user-type", "", "candidate or recruiter")

	whoamiCmd.Flags().Bool("remote", false, "ask the service for the profile behind the stored token")

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
}

// askString prompts for value when it was not given on the command line.
func askString(value, label string, mask bool) (string, error) {
	if value = strings.TrimSpace(value); value != "" {
		return value, nil
	}

	p := promptui.Prompt{Label: label}
	if mask {
		p.Mask = '*'
	}

	answer, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", strings.ToLower(label), err)
	}
	return strings.TrimSpace(answer), nil
}

func password(cmd *cobra.Command) (string, error) {
	value, _ := cmd.Flags().GetString("password")
	file, _ := cmd.Flags().GetString("password-file")

	secret, err := secrets.Load(secrets.Source{
		Name:  "password",
		Value: value,
		Env:   passwordEnv,
		File:  file,
	})
	if err == nil {
		return secret, nil
	}
	if file != "" {
		return "", err
	}

	return askString("", "Password", true)
}

func credentials(cmd *cobra.Command) (string, string, error) {
	flag, _ := cmd.Flags().GetString("email")
	email, err := askString(flag, "Email", false)
	if err != nil {
		return "", "", err
	}

	secret, err := password(cmd)
	if err != nil {
		return "", "", err
	}

	return email, secret, nil
}

// commit stores a successful authentication. Server errors are reported by
// their detail message only.
func commit(cmd *cobra.Command, env *environment, resp *hiring.AuthResponse, err error) error {
	if err != nil {
		env.logger.Debug("authentication failed", zap.Error(err))
		return errors.New(hiring.ErrorDetail(err))
	}

	role, err := session.ParseRole(resp.User.UserType)
	if err != nil {
		return err
	}

	s, err := env.store.CommitLogin(resp.AccessToken, resp.User.Username, role)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s (%s)\n", s.Username, s.Role)
	return nil
}

func login(cmd *cobra.Command, _ []string, env *environment) error {
	email, secret, err := credentials(cmd)
	if err != nil {
		return err
	}

	resp, err := env.client.Login(cmd.Context(), hiring.LoginRequest{Email: email, Password: secret})
	return commit(cmd, env, resp, err)
}

func register(cmd *cobra.Command, _ []string, env *environment) error {
	email, secret, err := credentials(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	username, _ := flags.GetString("username")
	fullName, _ := flags.GetString("full-name")
	company, _ := flags.GetString("company")
	userType, _ := flags.GetString("user-type")

	if username, err = askString(username, "Username", false); err != nil {
		return err
	}
	if fullName, err = askString(fullName, "Full name", false); err != nil {
		return err
	}

	if strings.TrimSpace(userType) == "" {
		rolePrompt := promptui.Select{
			Label: "Register as",
			Items: []string{string(session.RoleCandidate), string(session.RoleRecruiter)},
		}
		if _, userType, err = rolePrompt.Run(); err != nil {
			return err
		}
	}

	resp, err := env.client.Register(cmd.Context(), hiring.RegisterRequest{
		Email:    email,
		Password: secret,
		Username: username,
		FullName: fullName,
		Company:  strings.TrimSpace(company),
		UserType: strings.ToLower(strings.TrimSpace(userType)),
	})
	return commit(cmd, env, resp, err)
}

func whoami(cmd *cobra.Command, _ []string, env *environment) error {
	s := env.store.Current()
	out := cmd.OutOrStdout()

	if !s.IsAuthenticated() {
		fmt.Fprintln(out, "not logged in")
		return nil
	}

	remote, _ := cmd.Flags().GetBool("remote")
	if !remote {
		fmt.Fprintf(out, "%s (%s)\n", s.Username, s.Role)
		return nil
	}

	user, err := env.client.Me(cmd.Context())
	if err != nil {
		return errors.New(hiring.ErrorDetail(err))
	}

	return env.print(out, user, func() string {
		label := fmt.Sprintf("%s <%s> (%s)", user.Username, user.Email, user.UserType)
		if user.Company != "" {
			label += " at " + user.Company
		}
		return label
	})
}
