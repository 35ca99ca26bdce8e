package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/project-elevate/internal/adapter"
	"github.com/MKhiriev/project-elevate/internal/config"
	"github.com/MKhiriev/project-elevate/internal/logger"
	"github.com/MKhiriev/project-elevate/models"
)

var ErrMissingCredentials = errors.New("email and password are required (-email/-password or ADAPTER_EMAIL/ADAPTER_PASSWORD)")

type App struct {
	adapter     adapter.ServerAdapter
	credentials models.LoginRequest

	out io.Writer

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, cfg config.Adapter, out io.Writer, logger *logger.Logger) (*App, error) {
	credentials := models.LoginRequest{
		Email:    strings.TrimSpace(cfg.Email),
		Password: cfg.Password,
	}
	if credentials.Email == "" || credentials.Password == "" {
		return nil, ErrMissingCredentials
	}

	return &App{
		adapter:     serverAdapter,
		credentials: credentials,
		out:         out,
		logger:      logger,
	}, nil
}

// Run logs in, lists the caller's assessments and writes them to the output
// as a table preceded by a greeting line.
func (a *App) Run(ctx context.Context) error {
	if version, err := a.adapter.Version(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("could not read server version")
	} else {
		a.logger.Info().Str("server_version", version).Send()
	}

	session, err := a.adapter.Login(ctx, a.credentials)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	assessments, err := a.adapter.ListAssessments(ctx)
	if err != nil {
		return fmt.Errorf("list assessments: %w", err)
	}

	_, err = fmt.Fprintf(a.out, "%s\n%s\n",
		greeting(session.User),
		RenderAssessments(assessments),
	)
	return err
}

func greeting(user models.UserInfo) string {
	name := user.Name
	if name == "" {
		name = user.Email
	}
	return titleStyle.Render(fmt.Sprintf("Welcome, %s (%s)", name, user.Role))
}
