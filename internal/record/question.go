package record

import (
	"context"

	"github.com/dgallion1/notiondoc/internal/doctree"
	"github.com/dgallion1/notiondoc/internal/format"
	"github.com/dgallion1/notiondoc/internal/notion"
	"golang.org/x/sync/errgroup"
)

const (
	QuestionProp         = "Question"
	QuestionAnswerProp   = "Answer"
	QuestionTypeProp     = "Question type"
	QuestionCategoryProp = "Category"
)

// Question is an entry of the question database with its question type
// relations resolved to category names.
type Question struct {
	ID           string             `json:"id"`
	Question     []doctree.RichText `json:"question"`
	Answer       []doctree.RichText `json:"answer"`
	QuestionType []string           `json:"questionType"`
	Publishable  string             `json:"publishable,omitempty"`
	Blocks       []doctree.Block    `json:"-"`
}

// ParseQuestionPage reads a question page. Relations to question types
// that are not in types are dropped.
func ParseQuestionPage(page doctree.Page, types map[string]string) (Question, error) {
	props := page.Page.Properties
	question, err := titleProperty(props, QuestionProp)
	if err != nil {
		return Question{}, err
	}
	answer, err := richTextProperty(props, QuestionAnswerProp)
	if err != nil {
		return Question{}, err
	}
	related, err := relationProperty(props, QuestionTypeProp)
	if err != nil {
		return Question{}, err
	}
	publishable, err := selectProperty(props, PublishableProp)
	if err != nil {
		return Question{}, err
	}

	names := make([]string, 0, len(related))
	for _, id := range related {
		if name, ok := types[format.NormalizeID(id)]; ok {
			names = append(names, name)
		}
	}
	return Question{
		ID:           page.Page.ID,
		Question:     question,
		Answer:       answer,
		QuestionType: names,
		Publishable:  publishable,
		Blocks:       page.Blocks,
	}, nil
}

// LookupQuestions fetches the questions matching q and the question type
// table concurrently and joins them.
func (s *Store) LookupQuestions(ctx context.Context, q notion.Query) ([]Question, error) {
	questionsDB, err := s.database("question", s.dbs.Questions)
	if err != nil {
		return nil, err
	}
	typesDB, err := s.database("question type", s.dbs.QuestionTypes)
	if err != nil {
		return nil, err
	}

	var (
		pages []doctree.Page
		types map[string]string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pages, err = s.src.QueryDatabaseWithBlocks(gctx, questionsDB, q, s.opts)
		return err
	})
	g.Go(func() error {
		var err error
		types, err = s.questionTypes(gctx, typesDB)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	questions := make([]Question, 0, len(pages))
	for _, p := range pages {
		question, err := ParseQuestionPage(p, types)
		if err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}
	return questions, nil
}

// questionTypes maps normalized question type page ids to their category.
func (s *Store) questionTypes(ctx context.Context, db string) (map[string]string, error) {
	pages, err := s.src.QueryDatabase(ctx, db, notion.Query{}, s.opts)
	if err != nil {
		return nil, err
	}
	types := make(map[string]string, len(pages))
	for _, p := range pages {
		category, err := titleProperty(p.Properties, QuestionCategoryProp)
		if err != nil {
			s.log.Warn("skipping question type without category", "page_id", p.ID)
			continue
		}
		types[format.NormalizeID(p.ID)] = doctree.PlainText(category)
	}
	return types, nil
}

// QuestionQuery selects questions containing contains, or all of them.
func QuestionQuery(contains string) notion.Query {
	if contains == "" {
		return notion.Query{}
	}
	return notion.Query{Filter: TextContains(QuestionProp, contains)}
}
