// Package record maps database pages onto the typed records the renderers
// and the API work with.
package record

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dgallion1/notiondoc/internal/doctree"
	"github.com/dgallion1/notiondoc/internal/notion"
)

// Source is the part of the fetch layer record lookups depend on.
// *notion.Client implements it.
type Source interface {
	GetPage(ctx context.Context, pageID string, opts notion.RetryOptions) (doctree.PageObject, error)
	GetPageWithBlocks(ctx context.Context, pageID string, opts notion.RetryOptions) (*doctree.Page, error)
	QueryDatabase(ctx context.Context, databaseID string, q notion.Query, opts notion.RetryOptions) ([]doctree.PageObject, error)
	QueryDatabaseWithBlocks(ctx context.Context, databaseID string, q notion.Query, opts notion.RetryOptions) ([]doctree.Page, error)
}

// Databases holds the ids of the databases each record kind lives in.
type Databases struct {
	Documents     string
	Glossary      string
	Questions     string
	QuestionTypes string
	FAQs          string
	Projects      string
	Portal        string
}

// DefaultDatabases returns the production database ids. There is no
// default FAQ database.
func DefaultDatabases() Databases {
	return Databases{
		Documents:     "485a6344453640fca30507f4d4210a47",
		Glossary:      "3bad2594574f476f917d8080a6ec5ce7",
		Questions:     "2a701a3f59f880db8ebdc93e0dba5ce8",
		QuestionTypes: "2a701a3f59f880278472c9c288d64833",
		Projects:      "f96a33aa166046d1b323a553344e5ac4",
		Portal:        "be90f84b97d94ea3be668e87ddf80d9f",
	}
}

// Store runs record lookups against a Source.
type Store struct {
	src  Source
	dbs  Databases
	opts notion.RetryOptions
	log  *slog.Logger
}

func NewStore(src Source, dbs Databases, opts notion.RetryOptions, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{src: src, dbs: dbs, opts: opts, log: log}
}

// Source returns the fetch layer the store reads from.
func (s *Store) Source() Source { return s.src }

func (s *Store) database(name, id string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("%s database id is not configured", name)
	}
	return id, nil
}

// Record is the part every database page shares.
type Record struct {
	ID     string             `json:"id"`
	URL    string             `json:"url"`
	Title  []doctree.RichText `json:"title"`
	Icon   *doctree.Icon      `json:"icon,omitempty"`
	Blocks []doctree.Block    `json:"-"`
}

// ParseRecordPage reads the common fields of page, taking the title from
// the titleProp property.
func ParseRecordPage(page doctree.Page, titleProp string) (Record, error) {
	title, err := titleProperty(page.Page.Properties, titleProp)
	if err != nil {
		return Record{}, err
	}
	return Record{
		ID:     page.Page.ID,
		URL:    page.Page.URL,
		Title:  title,
		Icon:   page.Page.Icon,
		Blocks: page.Blocks,
	}, nil
}

// PropertyError reports a property that is missing or has the wrong type.
type PropertyError struct {
	Name string
	Want string
	Got  string
}

func (e *PropertyError) Error() string {
	if e.Got == "" {
		return fmt.Sprintf("expected %s to be %s but it is missing", e.Name, e.Want)
	}
	return fmt.Sprintf("expected %s to be %s but found %s", e.Name, e.Want, e.Got)
}

func (e *PropertyError) Is(target error) bool { return target == doctree.ErrStructure }

func property(props map[string]doctree.Property, name, want string) (doctree.Property, error) {
	p, ok := props[name]
	if !ok || p.Type != want {
		return p, &PropertyError{Name: name, Want: want, Got: p.Type}
	}
	return p, nil
}

func titleProperty(props map[string]doctree.Property, name string) ([]doctree.RichText, error) {
	p, err := property(props, name, "title")
	return p.Title, err
}

func richTextProperty(props map[string]doctree.Property, name string) ([]doctree.RichText, error) {
	p, err := property(props, name, "rich_text")
	return p.RichText, err
}

func relationProperty(props map[string]doctree.Property, name string) ([]string, error) {
	p, err := property(props, name, "relation")
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(p.Relation))
	for _, r := range p.Relation {
		ids = append(ids, r.ID)
	}
	return ids, nil
}

func selectProperty(props map[string]doctree.Property, name string) (string, error) {
	p, err := property(props, name, "select")
	if err != nil || p.Select == nil {
		return "", err
	}
	return p.Select.Name, nil
}

func multiSelectProperty(props map[string]doctree.Property, name string) ([]string, error) {
	p, err := property(props, name, "multi_select")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(p.MultiSelect))
	for _, o := range p.MultiSelect {
		names = append(names, o.Name)
	}
	return names, nil
}

func urlProperty(props map[string]doctree.Property, name string) (*string, error) {
	p, err := property(props, name, "url")
	return p.URL, err
}
