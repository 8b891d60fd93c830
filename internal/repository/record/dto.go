package record

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/kailas-cloud/stringdex/internal/domain/analysis"
	domrec "github.com/kailas-cloud/stringdex/internal/domain/record"
)

// recordDTO is the JSON shape stored at the key-value boundary.
type recordDTO struct {
	ID         string        `json:"id"`
	Value      string        `json:"value"`
	Properties propertiesDTO `json:"properties"`
	CreatedAt  time.Time     `json:"created_at"`
}

type propertiesDTO struct {
	Length           int            `json:"length"`
	IsPalindrome     bool           `json:"is_palindrome"`
	UniqueCharacters int            `json:"unique_characters"`
	WordCount        int            `json:"word_count"`
	SHA256Hash       string         `json:"sha256_hash"`
	CharFrequencyMap map[string]int `json:"char_frequency_map"`
}

func marshalRecord(rec *domrec.Record) ([]byte, error) {
	props := rec.Properties()
	dto := recordDTO{
		ID:    rec.ID(),
		Value: rec.Value(),
		Properties: propertiesDTO{
			Length:           props.Length,
			IsPalindrome:     props.IsPalindrome,
			UniqueCharacters: props.UniqueCharacters,
			WordCount:        props.WordCount,
			SHA256Hash:       props.SHA256,
			CharFrequencyMap: props.CharFrequency,
		},
		CreatedAt: rec.CreatedAt().UTC(),
	}
	data, err := json.Marshal(dto)
	if err != nil {
		return nil, fmt.Errorf("encode record %s: %w", rec.ID(), err)
	}
	return data, nil
}

func unmarshalRecord(data []byte) (domrec.Record, error) {
	var dto recordDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return domrec.Record{}, fmt.Errorf("decode record: %w", err)
	}

	props := analysis.Properties{
		Length:           dto.Properties.Length,
		IsPalindrome:     dto.Properties.IsPalindrome,
		UniqueCharacters: dto.Properties.UniqueCharacters,
		WordCount:        dto.Properties.WordCount,
		SHA256:           dto.Properties.SHA256Hash,
		CharFrequency:    dto.Properties.CharFrequencyMap,
	}
	return domrec.Reconstruct(dto.ID, dto.Value, props, dto.CreatedAt), nil
}
