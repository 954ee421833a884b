package record

import (
	"context"

	"github.com/dgallion1/notiondoc/internal/notion"
)

// FAQ property names and the select value marking an entry as
// publishable.
const (
	FAQQuestionProp   = "Question"
	FAQAnswerProp     = "Answer"
	PublishableProp   = "Publishable?"
	PublishableOption = "Publishable"
)

type FAQ = KnowledgeItem

// LookupFAQs returns the FAQ entries matching q with their block trees.
func (s *Store) LookupFAQs(ctx context.Context, q notion.Query) ([]FAQ, error) {
	db, err := s.database("faq", s.dbs.FAQs)
	if err != nil {
		return nil, err
	}
	return s.lookupItems(ctx, db, q, FAQQuestionProp, FAQAnswerProp)
}

// PublishedFAQQuery selects publishable FAQs, optionally restricted to
// questions containing contains.
func PublishedFAQQuery(contains string) notion.Query {
	var text map[string]any
	if contains != "" {
		text = TextContains(FAQQuestionProp, contains)
	}
	return notion.Query{Filter: And(SelectEquals(PublishableProp, PublishableOption), text)}
}
