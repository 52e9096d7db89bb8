// Package index maintains a bleve full-text index over stored
// summaries so past batch results can be searched by content.
package index

import (
	"fmt"
	"os"
	"strconv"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	blevequery "github.com/blevesearch/bleve/v2/search/query"

	"github.com/mlfeng/sumrank/internal/store"
)

// summaryDoc is the indexed shape of one stored summary.
type summaryDoc struct {
	RunID   int64  `json:"run_id"`
	RowID   int    `json:"row_id"`
	Text    string `json:"text"`
	Summary string `json:"summary"`
	Source  string `json:"source"`
}

// Hit is one search result.
type Hit struct {
	RunID   int64   `json:"run_id"`
	RowID   int     `json:"row_id"`
	Source  string  `json:"source"`
	Summary string  `json:"summary"`
	Score   float64 `json:"score"`
}

// SummaryIndex wraps a bleve index over run summaries.
type SummaryIndex struct {
	index bleve.Index
}

// Create builds a fresh index at dir, replacing any existing one.
func Create(dir string) (*SummaryIndex, error) {
	if err := os.RemoveAll(dir); err != nil {
		return nil, fmt.Errorf("reset index dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create index dir: %w", err)
	}
	index, err := bleve.New(dir, buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create bleve index: %w", err)
	}
	return &SummaryIndex{index: index}, nil
}

// Open opens an existing index at dir.
func Open(dir string) (*SummaryIndex, error) {
	index, err := bleve.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("open bleve index: %w", err)
	}
	return &SummaryIndex{index: index}, nil
}

func (s *SummaryIndex) Close() error {
	return s.index.Close()
}

// IndexRun adds all summaries of a run in one batch. Failed rows are
// skipped since they carry no summary text.
func (s *SummaryIndex) IndexRun(run *store.Run, summaries []store.Summary) error {
	batch := s.index.NewBatch()
	for _, sum := range summaries {
		if sum.Failure != "" || sum.Summary == "" {
			continue
		}
		id := strconv.FormatInt(run.ID, 10) + ":" + strconv.Itoa(sum.RowID)
		doc := summaryDoc{
			RunID:   run.ID,
			RowID:   sum.RowID,
			Text:    sum.Text,
			Summary: sum.Summary,
			Source:  run.Source,
		}
		if err := batch.Index(id, doc); err != nil {
			return fmt.Errorf("batch summary %s: %w", id, err)
		}
	}
	if err := s.index.Batch(batch); err != nil {
		return fmt.Errorf("index run %d: %w", run.ID, err)
	}
	return nil
}

// Search runs a match query against summary and source text.
func (s *SummaryIndex) Search(query string, topK int) ([]Hit, error) {
	if topK <= 0 {
		topK = 10
	}

	summaryQuery := bleve.NewMatchQuery(query)
	summaryQuery.SetField("summary")
	summaryQuery.SetBoost(2.0)
	textQuery := bleve.NewMatchQuery(query)
	textQuery.SetField("text")
	textQuery.SetBoost(1.0)

	disjunction := bleve.NewDisjunctionQuery([]blevequery.Query{summaryQuery, textQuery}...)

	req := bleve.NewSearchRequestOptions(disjunction, topK, 0, false)
	req.Fields = []string{"run_id", "row_id", "source", "summary"}

	res, err := s.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search summaries: %w", err)
	}

	var hits []Hit
	for _, hit := range res.Hits {
		source, _ := hit.Fields["source"].(string)
		summary, _ := hit.Fields["summary"].(string)
		hits = append(hits, Hit{
			RunID:   int64(numericField(hit.Fields["run_id"])),
			RowID:   numericField(hit.Fields["row_id"]),
			Source:  source,
			Summary: summary,
			Score:   hit.Score,
		})
	}
	return hits, nil
}

// Count returns the number of indexed summaries.
func (s *SummaryIndex) Count() (uint64, error) {
	return s.index.DocCount()
}

func numericField(val any) int {
	switch v := val.(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	default:
		return 0
	}
}

func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultAnalyzer = "en"
	indexMapping.DefaultField = "summary"

	docMapping := bleve.NewDocumentMapping()

	summaryField := bleve.NewTextFieldMapping()
	summaryField.Store = true
	summaryField.Index = true
	docMapping.AddFieldMappingsAt("summary", summaryField)

	textField := bleve.NewTextFieldMapping()
	textField.Store = false
	textField.Index = true
	docMapping.AddFieldMappingsAt("text", textField)

	sourceField := bleve.NewTextFieldMapping()
	sourceField.Store = true
	sourceField.Index = true
	sourceField.Analyzer = "keyword"
	docMapping.AddFieldMappingsAt("source", sourceField)

	idField := bleve.NewNumericFieldMapping()
	idField.Store = true
	idField.Index = false
	docMapping.AddFieldMappingsAt("run_id", idField)
	docMapping.AddFieldMappingsAt("row_id", idField)

	indexMapping.DefaultMapping = docMapping
	return indexMapping
}
