package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizador-api/internal/application/auth"
	"github.com/jhoicas/Cotizador-api/internal/application/billing"
	"github.com/jhoicas/Cotizador-api/internal/domain/session"
	"github.com/jhoicas/Cotizador-api/internal/infrastructure/credstore"
	"github.com/jhoicas/Cotizador-api/internal/infrastructure/excel"
	"github.com/jhoicas/Cotizador-api/internal/infrastructure/export"
	"github.com/jhoicas/Cotizador-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Cotizador-api/internal/infrastructure/restclient"
	"github.com/jhoicas/Cotizador-api/internal/interfaces/cli"
	"github.com/jhoicas/Cotizador-api/pkg/config"
	"github.com/jhoicas/Cotizador-api/pkg/jwt"
	"github.com/jhoicas/Cotizador-api/pkg/retry"
)

const storeToken = "tok-ok"

// ── Store falso ───────────────────────────────────────────────────────────────

type fakeStore struct {
	mu     sync.Mutex
	hits   int
	quotes []map[string]any
}

func (s *fakeStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hits++
	w.Header().Set("Content-Type", "application/json")

	if strings.HasPrefix(r.URL.Path, "/api/auth/") {
		var cred map[string]string
		_ = json.NewDecoder(r.Body).Decode(&cred)
		if cred["password"] == "wrong" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"token": storeToken})
		return
	}
	if r.Header.Get("Authorization") != "Bearer "+storeToken {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Token expired"}`))
		return
	}
	switch {
	case r.URL.Path == "/api/customers":
		_, _ = w.Write([]byte(`[{"_id":"c-1","name":"Acme Traders","address":"12 MG Road"}]`))
	case r.URL.Path == "/api/quotations" && r.Method == http.MethodGet:
		list := s.quotes
		if list == nil {
			list = []map[string]any{}
		}
		_ = json.NewEncoder(w).Encode(list)
	case r.URL.Path == "/api/quotations" && r.Method == http.MethodPost:
		var rec map[string]any
		_ = json.NewDecoder(r.Body).Decode(&rec)
		rec["_id"] = fmt.Sprintf("q-%d", len(s.quotes)+1)
		s.quotes = append(s.quotes, rec)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(rec)
	case strings.HasPrefix(r.URL.Path, "/api/quotations/"):
		id := strings.TrimPrefix(r.URL.Path, "/api/quotations/")
		for i, rec := range s.quotes {
			if rec["_id"] != id {
				continue
			}
			switch r.Method {
			case http.MethodDelete:
				s.quotes = append(s.quotes[:i], s.quotes[i+1:]...)
				w.WriteHeader(http.StatusNoContent)
			case http.MethodPut:
				var upd map[string]any
				_ = json.NewDecoder(r.Body).Decode(&upd)
				upd["_id"] = id
				s.quotes[i] = upd
				_ = json.NewEncoder(w).Encode(upd)
			default:
				_ = json.NewEncoder(w).Encode(rec)
			}
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Quotation not found"}`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (s *fakeStore) hitCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits
}

// ── Arnés ─────────────────────────────────────────────────────────────────────

type harness struct {
	store     *fakeStore
	creds     *credstore.FileStore
	sess      *session.Session
	exportDir string
	redirects int
	deps      cli.Deps
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	decimal.MarshalJSONWithoutQuotes = true
	t.Cleanup(func() { decimal.MarshalJSONWithoutQuotes = false })

	h := &harness{store: &fakeStore{}, exportDir: t.TempDir()}
	srv := httptest.NewServer(h.store)
	t.Cleanup(srv.Close)

	h.creds = credstore.NewFileStore(filepath.Join(t.TempDir(), "token"))
	h.sess = session.New(
		session.WithStore(h.creds),
		session.WithExpiry(jwt.IsExpired),
		session.WithRedirect(func() { h.redirects++ }),
	)

	client := restclient.New(srv.URL, 2*time.Second, nil)
	quotes := restclient.NewQuotationRepository(client)
	customers := restclient.NewCustomerRepository(client)
	issuer, err := pdf.IssuerFromConfig(config.IssuerConfig{Name: "Webbiify Infotech"})
	require.NoError(t, err)

	h.deps = cli.Deps{
		Session:    h.sess,
		Auth:       auth.NewAuthUseCase(restclient.NewAuthClient(client)),
		Quotations: billing.NewQuotationUseCase(quotes, customers, excel.QuotationRegister{}, retry.Policy{MaxAttempts: 2, Delay: time.Millisecond}, nil),
		PDF:        billing.NewPDFUseCase(quotes, customers, pdf.NewMarotoPDFGenerator(issuer), nil),
		Exporter:   export.NewFileExporter(h.exportDir, nil),
	}
	return h
}

func (h *harness) run(stdin string, args ...string) (int, string, string) {
	var out, errOut bytes.Buffer
	d := h.deps
	d.In = strings.NewReader(stdin)
	d.Out = &out
	d.Err = &errOut
	code := cli.Execute(context.Background(), d, args)
	return code, out.String(), errOut.String()
}

func (h *harness) login(t *testing.T) {
	t.Helper()
	code, _, errOut := h.run("", "login", "--email", "ops@webbiify.test", "--password", "secret")
	require.Equal(t, 0, code, errOut)
}

const draftJSON = `{"number":"Q-001","client":"Acme Traders","date":"2024-03-01","expireDate":"2024-03-31","status":"Draft",
"items":[{"item":"Design","hsnSac":"9983","quantity":2,"price":500,"sgst":9,"igst":9}]}`

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestLogin_GuardaCredencial(t *testing.T) {
	h := newHarness(t)
	code, out, _ := h.run("secret\n", "login", "--email", "ops@webbiify.test")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Sesión iniciada")

	tok, err := h.creds.Load()
	require.NoError(t, err)
	assert.Equal(t, storeToken, tok)
	assert.Equal(t, session.Issued, h.sess.State())
}

func TestLogin_CredencialesRechazadas(t *testing.T) {
	h := newHarness(t)
	code, _, errOut := h.run("", "login", "--email", "ops@webbiify.test", "--password", "wrong")

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "credenciales rechazadas: Invalid credentials")
	assert.NotContains(t, errOut, "sesión expirada")
	tok, err := h.creds.Load()
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestLogout_BorraCredencial(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	code, out, _ := h.run("", "logout")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Sesión cerrada")
	tok, err := h.creds.Load()
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestList_SinSesion_PideLogin(t *testing.T) {
	h := newHarness(t)
	code, _, errOut := h.run("", "quotation", "list")

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "quotectl login")
	assert.Equal(t, 1, h.redirects)
	assert.Zero(t, h.store.hitCount(), "sin credencial no hay llamada de red")
}

func TestCreate_ImprimeListaReleida(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	code, out, errOut := h.run(draftJSON, "quotation", "create")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Cotización Q-001 creada (id q-1, total 1180.00)")
	assert.Contains(t, out, "Acme Traders")
}

func TestCreate_BorradorInvalido_NoTocaLaRed(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	before := h.store.hitCount()

	code, _, errOut := h.run(`{"number":"","items":[{"quantity":"abc"}]}`, "quotation", "create")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "number: Number is required")
	assert.Contains(t, errOut, "items[0].quantity: Valid quantity is required")
	assert.Equal(t, before, h.store.hitCount())
}

func TestPDF_ExportaArchivo(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	code, _, errOut := h.run(draftJSON, "quotation", "create")
	require.Equal(t, 0, code, errOut)

	code, out, errOut := h.run("", "quotation", "pdf", "q-1")
	require.Equal(t, 0, code, errOut)
	path := filepath.Join(h.exportDir, "quotation_Q-001.pdf")
	assert.Contains(t, out, path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")))
}

func TestPDF_NoExiste_MensajeDelStore(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	code, _, errOut := h.run("", "quotation", "pdf", "nope")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Quotation not found")

	entries, err := os.ReadDir(h.exportDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRegister_EscribeXlsx(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	out := filepath.Join(t.TempDir(), "reg.xlsx")
	code, _, errOut := h.run("", "quotation", "register", "--out", out)
	require.Equal(t, 0, code, errOut)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("PK")))
}

func TestShell_CreaEditaYBorra(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	script := strings.Join([]string{
		"new",
		"set number Q-100",
		"set client Acme Traders",
		"set date 2024-03-01",
		"set expireDate 2024-03-31",
		"item set 1 item Design",
		"item set 1 hsnSac 9983",
		"item set 1 quantity 2",
		"item set 1 price 500",
		"item set 1 sgst 9",
		"item set 1 igst 9",
		"item rm 1",
		"preview",
		"save",
		"edit 1",
		"set note urgente",
		"save",
		"delete 1",
		"exit",
	}, "\n") + "\n"

	code, out, errOut := h.run(script, "shell")
	require.Equal(t, 0, code, errOut)

	assert.Contains(t, out, "fila 1: 1000.00")
	assert.Contains(t, out, "! la cotización debe conservar al menos una línea")
	assert.Contains(t, out, "Total 1180.00")
	assert.Contains(t, out, "Cotización Q-100 guardada (total 1180.00)")
	assert.Contains(t, out, "Cotización Q-100 eliminada")

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	assert.Empty(t, h.store.quotes)
}

func TestShell_SinBorradorAvisa(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	code, out, _ := h.run("preview\nfoo\n", "shell")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "! no hay borrador abierto")
	assert.Contains(t, out, `! comando desconocido "foo"`)
}
