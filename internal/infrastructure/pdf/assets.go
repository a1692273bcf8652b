package pdf

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/johnfercher/maroto/v2/pkg/consts/extension"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/pkg/config"
)

var (
	//go:embed assets/logo.png
	defaultLogo []byte
	//go:embed assets/stamp.png
	defaultStamp []byte
	//go:embed assets/bankdetails.png
	defaultBankImage []byte
)

// IssuerFromConfig arma la identidad del emisor. Las imágenes se leen de las rutas
// configuradas; sin ruta se usan las embebidas.
func IssuerFromConfig(cfg config.IssuerConfig) (entity.Issuer, error) {
	iss := entity.Issuer{
		Name:         cfg.Name,
		AddressLines: append([]string(nil), cfg.AddressLines...),
		Email:        cfg.Email,
		Website:      cfg.Website,
		BankAccount:  cfg.BankAccount,
		BankIFSC:     cfg.BankIFSC,
		BankMICR:     cfg.BankMICR,
		Terms:        append([]string(nil), cfg.Terms...),
	}
	var err error
	if iss.Logo, iss.LogoFormat, err = readImage(cfg.LogoPath, defaultLogo); err != nil {
		return iss, err
	}
	if iss.Stamp, iss.StampFormat, err = readImage(cfg.StampPath, defaultStamp); err != nil {
		return iss, err
	}
	if iss.BankImage, iss.BankImageFormat, err = readImage(cfg.BankImagePath, defaultBankImage); err != nil {
		return iss, err
	}
	return iss, nil
}

// readImage lee la imagen configurada y deduce su formato de la extensión del archivo.
func readImage(path string, fallback []byte) ([]byte, string, error) {
	if path == "" {
		return fallback, string(extension.Png), nil
	}
	format := extension.Type(strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")))
	if !format.IsValid() {
		return nil, "", fmt.Errorf("pdf: formato de imagen no soportado %q (png, jpg o jpeg)", path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: leer imagen %s: %w", path, err)
	}
	return b, string(format), nil
}

// imageExtension traduce el formato guardado en el emisor; vacío o desconocido => png.
func imageExtension(format string) extension.Type {
	if t := extension.Type(strings.ToLower(format)); t.IsValid() {
		return t
	}
	return extension.Png
}
