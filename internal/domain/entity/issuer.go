package entity

// Issuer identidad fija del emisor de cotizaciones (nombre, banco, términos e imágenes).
// Se inyecta desde configuración al renderizador; no sale de ningún registro remoto.
type Issuer struct {
	Name         string
	AddressLines []string
	Email        string
	Website      string
	BankAccount  string
	BankIFSC     string // código de ruta
	BankMICR     string // código de compensación
	Terms        []string
	Logo         []byte
	Stamp        []byte
	BankImage    []byte
	// Formato de cada imagen: "png", "jpg" o "jpeg". Vacío = png.
	LogoFormat      string
	StampFormat     string
	BankImageFormat string
}
