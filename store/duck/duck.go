// Package duck stores document metadata in an in-memory duckdb and
// evaluates applied chip sequences as sql.
package duck

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	nt "vellum/entity"
)

type Duck struct {
	db       *sql.DB
	logger   nt.Logger
	field    string
	chipSeq  []nt.FilterChip
	filename string
}

func New(lgr nt.Logger) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", "")
	if err != nil {
		err = errors.Wrapf(err, "failed to open memo duck")
		return
	}

	dk = &Duck{
		db:     db,
		logger: lgr,
	}

	return
}

func (dk *Duck) Close() {
	dk.db.Close()
}

// Name returns the name of the loaded file
func (dk *Duck) Name() string {
	return dk.filename
}

// Load a metadata file, json lines or csv by extension
func (dk *Duck) Load(path string) (err error) {

	reader := "read_json_auto"
	if strings.HasSuffix(path, ".csv") {
		reader = "read_csv_auto"
	}

	create := fmt.Sprintf("CREATE TABLE docs AS SELECT * FROM %s('%s')", reader, path)

	_, err = dk.db.Exec(create)
	if err != nil {
		err = errors.Wrapf(err, "failed to create docs table from %s", path)
		return
	}

	dk.filename = path
	return
}

// SetView applies a chip sequence scoped to a field. The sequence itself
// is the contract; rendering it as sql is this store's private business.
func (dk *Duck) SetView(field string, chipSeq []nt.FilterChip) (err error) {
	dk.field = field
	dk.chipSeq = chipSeq
	return nil
}

// GetView returns fields and the count matching the current view
func (dk *Duck) GetView() (fields []nt.Field, count int, err error) {

	fields, err = getFields(dk.db)
	if err != nil {
		return
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM docs %s", dk.whereClause())
	err = dk.db.QueryRow(countQuery).Scan(&count)
	if err != nil {
		err = errors.Wrapf(err, "failed to count docs")
		return
	}

	return
}

// GetPage of matching documents
func (dk *Duck) GetPage(offset, size int) (docs []nt.Doc, err error) {

	query := fmt.Sprintf("SELECT * FROM docs %s LIMIT %d OFFSET %d", dk.whereClause(), size, offset)

	rows, err := dk.db.Query(query)
	if err != nil {
		err = errors.Wrapf(err, "failed to query docs")
		return
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		err = errors.Wrapf(err, "failed to get cols from query rows")
		return
	}

	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}

		err = rows.Scan(ptrs...)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan row")
			return
		}

		doc := make(nt.Doc, len(cols))
		for i, val := range vals {
			doc[i] = nt.Value{Raw: val}
		}
		docs = append(docs, doc)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating rows")
	return
}

// unexported

// whereClause folds the chip sequence left to right, each chip's op
// joining it to everything accumulated before it. NOT folds the same as
// AND NOT; the distinction is how the query text reads, not what matches.
func (dk *Duck) whereClause() string {

	if len(dk.chipSeq) == 0 || dk.field == "" {
		return ""
	}

	acc := dk.chipExpr(dk.chipSeq[0])
	for _, chip := range dk.chipSeq[1:] {
		expr := dk.chipExpr(chip)

		switch chip.Op {
		case nt.OpOr:
			acc = fmt.Sprintf("(%s OR %s)", acc, expr)
		case nt.OpAnd:
			acc = fmt.Sprintf("(%s AND %s)", acc, expr)
		default: // OpNot, OpAndNot
			acc = fmt.Sprintf("(%s AND NOT %s)", acc, expr)
		}
	}

	return "WHERE " + acc
}

// chipExpr matches one chip value against the scoped field. Slash
// delimited values match as regex, * wildcards fold to LIKE, anything
// else is a substring match.
func (dk *Duck) chipExpr(chip nt.FilterChip) string {

	value := strings.ReplaceAll(chip.Value, "'", "''")

	if len(value) > 1 && strings.HasPrefix(value, "/") && strings.HasSuffix(value, "/") {
		return fmt.Sprintf("regexp_matches(%s::VARCHAR, '%s')", dk.field, strings.Trim(value, "/"))
	}

	if strings.Contains(value, "*") {
		pat := strings.ReplaceAll(value, "%", `\%`)
		pat = strings.ReplaceAll(pat, "*", "%")
		return fmt.Sprintf("%s::VARCHAR ILIKE '%s'", dk.field, pat)
	}

	return fmt.Sprintf("contains(lower(%s::VARCHAR), lower('%s'))", dk.field, value)
}

func getFields(db *sql.DB) (fields []nt.Field, err error) {

	rows, err := db.Query(`
		SELECT column_name, data_type
		FROM information_schema.columns
		WHERE table_name = 'docs'
		ORDER BY ordinal_position
	`)
	if err != nil {
		err = errors.Wrapf(err, "failed to query schema")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var field nt.Field
		if err = rows.Scan(&field.Name, &field.Type); err != nil {
			err = errors.Wrapf(err, "failed to scan field")
			return
		}
		fields = append(fields, field)
	}

	return
}
