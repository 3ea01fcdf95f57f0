package parsers

import (
	"errors"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/ersonp/movement-core/internal/domain/entities"
)

// recordSchema is the shape every record of every collection must have.
const recordSchema = `
#Record: {
	id:          string & !=""
	movementId?: string | null
	tags?:       [...string] | null
	...
}
`

// ImportError describes input that does not have the shape of a snapshot.
type ImportError struct {
	// Path locates the offending value, e.g. "entities[3]".
	Path    string
	Message string
}

func (e *ImportError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return e.Path + ": " + e.Message
}

func compileRecordSchema(ctx *cue.Context) (cue.Value, error) {
	record := ctx.CompileString(recordSchema).LookupPath(cue.ParsePath("#Record"))
	if err := record.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("compiling record schema: %w", err)
	}
	return record, nil
}

// validateSnapshot checks canonical snapshot JSON. Paths in the returned
// ImportErrors use the caller's vocabulary.
func validateSnapshot(canonical []byte, vocab Vocabulary) error {
	ctx := cuecontext.New()
	record, err := compileRecordSchema(ctx)
	if err != nil {
		return err
	}

	doc := ctx.CompileBytes(canonical)
	if err := doc.Err(); err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	var errs []error
	movements := doc.LookupPath(cue.ParsePath(string(entities.CollectionMovements)))
	if !movements.Exists() || movements.IncompleteKind() != cue.ListKind {
		errs = append(errs, &ImportError{
			Path:    vocab.Root(),
			Message: fmt.Sprintf("missing top-level %q list", vocab.Root()),
		})
	}

	for _, c := range entities.AllCollections {
		list := doc.LookupPath(cue.ParsePath(string(c)))
		if !list.Exists() {
			continue
		}
		iter, err := list.List()
		if err != nil {
			continue
		}
		for i := 0; iter.Next(); i++ {
			if err := iter.Value().Unify(record).Validate(cue.Concrete(true)); err != nil {
				errs = append(errs, &ImportError{
					Path:    fmt.Sprintf("%s[%d]", vocab.External(string(c)), i),
					Message: cueMessage(err),
				})
			}
		}
	}
	return errors.Join(errs...)
}

// validateRecord checks a single canonical record.
func validateRecord(canonical []byte, path string) error {
	ctx := cuecontext.New()
	record, err := compileRecordSchema(ctx)
	if err != nil {
		return err
	}
	value := ctx.CompileBytes(canonical)
	if err := value.Err(); err != nil {
		return fmt.Errorf("loading record: %w", err)
	}
	if err := value.Unify(record).Validate(cue.Concrete(true)); err != nil {
		return &ImportError{Path: path, Message: cueMessage(err)}
	}
	return nil
}

// cueMessage keeps the first line of a CUE error.
func cueMessage(err error) string {
	msg, _, _ := strings.Cut(err.Error(), "\n")
	return msg
}
