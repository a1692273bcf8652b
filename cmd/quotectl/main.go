package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cotizador-api/internal/application/auth"
	"github.com/jhoicas/Cotizador-api/internal/application/billing"
	"github.com/jhoicas/Cotizador-api/internal/domain/session"
	"github.com/jhoicas/Cotizador-api/internal/infrastructure/credstore"
	infraexcel "github.com/jhoicas/Cotizador-api/internal/infrastructure/excel"
	"github.com/jhoicas/Cotizador-api/internal/infrastructure/export"
	infrapdf "github.com/jhoicas/Cotizador-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Cotizador-api/internal/infrastructure/restclient"
	"github.com/jhoicas/Cotizador-api/internal/interfaces/cli"
	"github.com/jhoicas/Cotizador-api/pkg/config"
	"github.com/jhoicas/Cotizador-api/pkg/jwt"
	"github.com/jhoicas/Cotizador-api/pkg/logger"
	"github.com/jhoicas/Cotizador-api/pkg/retry"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Out: os.Stderr})

	decimal.MarshalJSONWithoutQuotes = true

	creds := credstore.NewFileStore(cfg.CLI.CredentialFile)
	sess := session.New(
		session.WithStore(creds),
		session.WithExpiry(jwt.IsExpired),
		session.WithRedirect(func() {
			fmt.Fprintln(os.Stderr, "Sesión expirada. Ejecute `quotectl login`.")
		}),
	)
	if err := sess.Restore(); err != nil {
		log.Warn().Err(err).Str("file", creds.Path()).Msg("no se pudo leer la credencial guardada")
	}

	client := restclient.New(cfg.Store.BaseURL, cfg.Store.Timeout, log)
	customerRepo := restclient.NewCustomerRepository(client)
	quotationRepo := restclient.NewQuotationRepository(client)

	issuer, err := infrapdf.IssuerFromConfig(cfg.Issuer)
	if err != nil {
		fmt.Fprintln(os.Stderr, "imágenes del emisor:", err)
		os.Exit(1)
	}
	policy := retry.Policy{MaxAttempts: cfg.Retry.MaxAttempts, Delay: cfg.Retry.Delay}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	code := cli.Execute(ctx, cli.Deps{
		Session:    sess,
		Auth:       auth.NewAuthUseCase(restclient.NewAuthClient(client)),
		Quotations: billing.NewQuotationUseCase(quotationRepo, customerRepo, infraexcel.QuotationRegister{}, policy, log),
		PDF:        billing.NewPDFUseCase(quotationRepo, customerRepo, infrapdf.NewMarotoPDFGenerator(issuer), log),
		Exporter:   export.NewFileExporter(cfg.Export.Dir, log),
		In:         os.Stdin,
		Out:        os.Stdout,
		Err:        os.Stderr,
	}, os.Args[1:])
	stop()
	os.Exit(code)
}
