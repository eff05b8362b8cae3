// Package service implements the document-compare use case on top of the
// internal/ooxml and internal/compare packages.
package service

import (
	"fmt"

	"github.com/vortex/docx-compare/internal/compare"
	"github.com/vortex/docx-compare/internal/model"
	"github.com/vortex/docx-compare/internal/ooxml"
)

// CompareService opens, compares, and re-serializes .docx documents.
type CompareService interface {
	// Open parses a .docx byte stream into a Document, for inspection or
	// round-trip validation endpoints.
	Open(data []byte) (*model.Document, error)

	// Compare diffs original against modified and returns the redlined
	// .docx bytes plus the change statistics.
	Compare(original, modified []byte, opts compare.Options) (CompareOutput, error)

	// Validate round-trips data through Parse -> Generate and reports
	// whether the result is structurally well-formed (non-empty, parseable
	// again), without asserting byte-for-byte equality.
	Validate(data []byte) error
}

// CompareOutput is the result of a Compare call.
type CompareOutput struct {
	RedlinedDocx []byte
	Statistics   compare.Result
}

type compareService struct {
	parser    *ooxml.Parser
	generator *ooxml.Generator
}

// NewCompareService returns a ready-to-use CompareService backed by the
// package's OOXML parser/generator.
func NewCompareService() CompareService {
	return &compareService{
		parser:    ooxml.NewParser(),
		generator: ooxml.NewGenerator(),
	}
}

func (s *compareService) Open(data []byte) (*model.Document, error) {
	doc, err := s.parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("service: open document: %w: %w", ErrParse, err)
	}
	return doc, nil
}

func (s *compareService) Compare(original, modified []byte, opts compare.Options) (CompareOutput, error) {
	originalDoc, err := s.parser.Parse(original)
	if err != nil {
		return CompareOutput{}, fmt.Errorf("service: parse original: %w: %w", ErrParse, err)
	}
	modifiedDoc, err := s.parser.Parse(modified)
	if err != nil {
		return CompareOutput{}, fmt.Errorf("service: parse modified: %w: %w", ErrParse, err)
	}

	result := compare.Run(originalDoc, modifiedDoc, opts)

	blob, err := s.generator.Generate(result.Document)
	if err != nil {
		return CompareOutput{}, fmt.Errorf("service: generate redlined document: %w: %w", ErrWrite, err)
	}

	return CompareOutput{RedlinedDocx: blob, Statistics: result}, nil
}

func (s *compareService) Validate(data []byte) error {
	doc, err := s.parser.Parse(data)
	if err != nil {
		return fmt.Errorf("service: validate: parse: %w: %w", ErrParse, err)
	}
	blob, err := s.generator.Generate(doc)
	if err != nil {
		return fmt.Errorf("service: validate: regenerate: %w: %w", ErrWrite, err)
	}
	if _, err := s.parser.Parse(blob); err != nil {
		return fmt.Errorf("service: validate: reparse: %w: %w", ErrWrite, err)
	}
	return nil
}
