// Package cli implementa quotectl: comandos sueltos con cobra y un shell interactivo
// sobre la pantalla de cotizaciones.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Cotizador-api/internal/application/auth"
	"github.com/jhoicas/Cotizador-api/internal/application/billing"
	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/quotation"
	"github.com/jhoicas/Cotizador-api/internal/domain/session"
	"github.com/jhoicas/Cotizador-api/internal/infrastructure/export"
	"github.com/jhoicas/Cotizador-api/internal/infrastructure/restclient"
)

// Deps dependencias de quotectl.
type Deps struct {
	Session    *session.Session
	Auth       *auth.AuthUseCase
	Quotations *billing.QuotationUseCase
	PDF        *billing.PDFUseCase
	Exporter   *export.FileExporter
	In         io.Reader
	Out        io.Writer
	Err        io.Writer
}

type app struct {
	Deps
	in *bufio.Reader
}

// Execute corre quotectl con args y devuelve el código de salida.
func Execute(ctx context.Context, d Deps, args []string) int {
	a := &app{Deps: d, in: bufio.NewReader(d.In)}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(d.In)
	root.SetOut(d.Out)
	root.SetErr(d.Err)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(d.Err, "error:", Presentable(err))
		return 1
	}
	return 0
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "quotectl",
		Short:         "Cotizaciones desde la terminal contra el store remoto",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		a.loginCommand("login", "Iniciar sesión", a.Auth.Login),
		a.loginCommand("register", "Registrar usuario e iniciar sesión", a.Auth.Register),
		a.logoutCommand(),
		a.quotationCommand(),
		a.shellCommand(),
	)
	return root
}

// ctx contexto del comando con la sesión adjunta.
func (a *app) ctx(cmd *cobra.Command) context.Context {
	return session.NewContext(cmd.Context(), a.Session)
}

// ── Sesión ────────────────────────────────────────────────────────────────────

type exchangeFunc func(context.Context, entity.Credentials, *session.Session) (*entity.AuthToken, error)

// errCredentialsRejected el store rechazó email/contraseña; no es una sesión vencida.
var errCredentialsRejected = errors.New("credenciales rechazadas")

func (a *app) loginCommand(use, short string, exchange exchangeFunc) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if email == "" {
				email = a.prompt("Email: ")
			}
			if password == "" {
				password = a.prompt("Password: ")
			}
			if _, err := exchange(cmd.Context(), entity.Credentials{Email: email, Password: password}, a.Session); err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					return fmt.Errorf("%w: %s", errCredentialsRejected, restclient.Message(err))
				}
				return err
			}
			fmt.Fprintf(a.Out, "Sesión iniciada como %s\n", strings.TrimSpace(email))
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email del usuario")
	cmd.Flags().StringVar(&password, "password", "", "contraseña (si falta se pide por stdin)")
	return cmd
}

func (a *app) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cerrar sesión y borrar la credencial guardada",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.Auth.Logout(a.Session); err != nil {
				return err
			}
			fmt.Fprintln(a.Out, "Sesión cerrada")
			return nil
		},
	}
}

func (a *app) prompt(label string) string {
	fmt.Fprint(a.Out, label)
	line, _ := a.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// ── Errores ───────────────────────────────────────────────────────────────────

// Presentable texto para el usuario: campos inválidos, aviso de sesión, mensaje
// del store o el error tal cual.
func Presentable(err error) string {
	var verr *quotation.ValidationError
	var apiErr *restclient.APIError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &verr):
		var b strings.Builder
		b.WriteString("borrador inválido:")
		for _, f := range verr.Fields.Fields() {
			fmt.Fprintf(&b, "\n  %s: %s", f, verr.Fields[f])
		}
		return b.String()
	case errors.Is(err, domain.ErrUnauthorized):
		return "sesión expirada o ausente, ejecute `quotectl login`"
	case errors.Is(err, restclient.ErrTransport), errors.As(err, &apiErr):
		return restclient.Message(err)
	}
	return err.Error()
}
