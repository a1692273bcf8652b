package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Cotizador-api/internal/application/billing"
	"github.com/jhoicas/Cotizador-api/internal/application/screen"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/quotation"
)

type quotationScreen = screen.ListScreen[entity.Quotation, quotation.Draft]

const shellHelp = `Comandos:
  list                          recargar la lista
  view <n>                      ver la cotización n
  new                           nuevo borrador
  edit <n>                      editar la cotización n
  set <campo> <valor>           number, client, clientId, date, expireDate, status, year, currency, note
  item add                      agregar fila
  item rm <fila>                quitar fila (queda al menos una)
  item set <fila> <campo> <v>   item, hsnSac, quantity, price, sgst, igst
  preview                       totales del borrador
  save                          validar y guardar el borrador
  delete <n>                    eliminar la cotización n
  pdf <n>                       exportar el PDF de la cotización n
  close                         cerrar la vista actual
  exit                          salir`

var errExit = errors.New("exit")

// shell estado del shell: la pantalla y el id del registro en edición ("" = nuevo).
type shell struct {
	a         *app
	scr       *quotationScreen
	editingID string
}

func (a *app) shellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Pantalla interactiva de cotizaciones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sh := &shell{a: a, scr: screen.NewListScreen[entity.Quotation, quotation.Draft](Presentable)}
			return sh.run(a.ctx(cmd))
		},
	}
}

func (sh *shell) run(ctx context.Context) error {
	defer sh.scr.Close()
	out := sh.a.Out
	fmt.Fprintln(out, "quotectl shell. Escriba help para ver los comandos.")
	sh.reload(ctx, false)

	for {
		fmt.Fprint(out, "> ")
		line, err := sh.a.in.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			if cmdErr := sh.dispatch(ctx, strings.Fields(line)); cmdErr != nil {
				if errors.Is(cmdErr, errExit) {
					return nil
				}
				sh.scr.SetError(cmdErr)
				fmt.Fprintln(out, "!", sh.scr.Error())
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (sh *shell) dispatch(ctx context.Context, tokens []string) error {
	out := sh.a.Out
	cmd, args := strings.ToLower(tokens[0]), tokens[1:]
	switch cmd {
	case "help", "?":
		fmt.Fprintln(out, shellHelp)
	case "exit", "quit":
		return errExit
	case "list", "ls":
		sh.reload(ctx, false)
	case "view":
		q, err := sh.pick(args)
		if err != nil {
			return err
		}
		sh.scr.Open(q)
		printQuotation(out, q)
	case "new":
		sh.editingID = ""
		sh.scr.Edit(quotation.NewDraft())
		fmt.Fprintln(out, "Nuevo borrador")
	case "edit":
		q, err := sh.pick(args)
		if err != nil {
			return err
		}
		sh.editingID = q.ID
		sh.scr.Edit(quotation.FromQuotation(&q))
		fmt.Fprintf(out, "Editando %s\n", orNA(q.Number))
	case "set":
		return sh.setHeader(args)
	case "item":
		return sh.editItem(args)
	case "preview":
		d, err := sh.draft()
		if err != nil {
			return err
		}
		printPreview(out, sh.a.Quotations.Preview(d))
	case "save":
		return sh.save(ctx)
	case "delete", "rm":
		q, err := sh.pick(args)
		if err != nil {
			return err
		}
		if err := sh.a.Quotations.Delete(ctx, q.ID); err != nil {
			return err
		}
		sh.scr.Remove(q.ID)
		fmt.Fprintf(out, "Cotización %s eliminada\n", orNA(q.Number))
	case "pdf":
		q, err := sh.pick(args)
		if err != nil {
			return err
		}
		path, err := sh.a.exportPDF(ctx, sh.a.Exporter, q.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "PDF guardado en %s\n", path)
	case "close":
		sh.scr.Dismiss()
	default:
		return fmt.Errorf("comando desconocido %q (help)", cmd)
	}
	return nil
}

func (sh *shell) reload(ctx context.Context, afterMutation bool) {
	sh.scr.Load(ctx, func(ctx context.Context) ([]entity.Quotation, error) {
		return sh.a.list(ctx, afterMutation)
	})
	if msg := sh.scr.Error(); msg != "" {
		fmt.Fprintln(sh.a.Out, "!", msg)
		return
	}
	printQuotations(sh.a.Out, sh.scr.Items())
}

// pick resuelve el número de fila de la lista (1..n).
func (sh *shell) pick(args []string) (entity.Quotation, error) {
	if len(args) < 1 {
		return entity.Quotation{}, errors.New("falta el número de la cotización")
	}
	items := sh.scr.Items()
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(items) {
		return entity.Quotation{}, fmt.Errorf("cotización %q fuera de la lista", args[0])
	}
	return items[n-1], nil
}

func (sh *shell) draft() (quotation.Draft, error) {
	d, ok := sh.scr.View().Draft()
	if !ok {
		return quotation.Draft{}, errors.New("no hay borrador abierto (new o edit)")
	}
	return d, nil
}

func (sh *shell) setHeader(args []string) error {
	if len(args) < 1 {
		return errors.New("uso: set <campo> <valor>")
	}
	d, err := sh.draft()
	if err != nil {
		return err
	}
	v := quotation.FormValue(strings.Join(args[1:], " "))
	switch args[0] {
	case "number":
		d.Number = v
	case "client":
		d.Client = v
	case "clientId":
		d.ClientID = v
	case "date":
		d.Date = v
	case "expireDate":
		d.ExpireDate = v
	case "status":
		d.Status = v
	case "year":
		d.Year = v
	case "currency":
		d.Currency = v
	case "note":
		d.Note = v
	default:
		return fmt.Errorf("campo desconocido %q", args[0])
	}
	sh.scr.Edit(d)
	return nil
}

func (sh *shell) editItem(args []string) error {
	if len(args) < 1 {
		return errors.New("uso: item add | item rm <fila> | item set <fila> <campo> <valor>")
	}
	d, err := sh.draft()
	if err != nil {
		return err
	}
	var (
		op    string
		index int
		field string
		value quotation.FormValue
	)
	switch args[0] {
	case "add":
		op = billing.ItemOpAdd
	case "rm", "remove":
		op = billing.ItemOpRemove
		if index, err = rowArg(args, 1); err != nil {
			return err
		}
	case "set":
		op = billing.ItemOpSet
		if len(args) < 3 {
			return errors.New("uso: item set <fila> <campo> <valor>")
		}
		if index, err = rowArg(args, 1); err != nil {
			return err
		}
		field = args[2]
		value = quotation.FormValue(strings.Join(args[3:], " "))
	default:
		return fmt.Errorf("operación de fila desconocida %q", args[0])
	}
	d, err = sh.a.Quotations.EditItems(d, op, index, field, value)
	if err != nil {
		return err
	}
	sh.scr.Edit(d)
	if op == billing.ItemOpSet {
		p := sh.a.Quotations.Preview(d)
		fmt.Fprintf(sh.a.Out, "  fila %d: %s\n", index+1, p.Lines[index].StringFixed(2))
	} else {
		fmt.Fprintf(sh.a.Out, "  %d filas\n", len(d.Items))
	}
	return nil
}

// rowArg convierte la fila 1..n del usuario en índice 0..n-1.
func rowArg(args []string, pos int) (int, error) {
	if len(args) <= pos {
		return 0, errors.New("falta el número de fila")
	}
	n, err := strconv.Atoi(args[pos])
	if err != nil {
		return 0, fmt.Errorf("fila inválida %q", args[pos])
	}
	return n - 1, nil
}

func (sh *shell) save(ctx context.Context) error {
	d, err := sh.draft()
	if err != nil {
		return err
	}
	var q *entity.Quotation
	if sh.editingID == "" {
		q, err = sh.a.Quotations.Create(ctx, d)
	} else {
		q, err = sh.a.Quotations.Update(ctx, sh.editingID, d)
	}
	if err != nil {
		return err
	}
	created := sh.editingID == ""
	sh.editingID = ""
	sh.scr.Upsert(*q)
	sh.scr.Dismiss()
	fmt.Fprintf(sh.a.Out, "Cotización %s guardada (total %s)\n", orNA(q.Number), q.Total.StringFixed(2))
	if created {
		sh.reload(ctx, true)
	}
	return nil
}
