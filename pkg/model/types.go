// Package model re-exports the internal form model so consumers depend on a
// stable import path while the implementation stays internal.
package model

import (
	internalmodel "github.com/goliatone/go-formpage/internal/model"
	pkgopenapi "github.com/goliatone/go-formpage/pkg/openapi"
)

// FieldType re-exports the internal FieldType enumeration.
type FieldType = internalmodel.FieldType

const (
	FieldTypeString  = internalmodel.FieldTypeString
	FieldTypeInteger = internalmodel.FieldTypeInteger
	FieldTypeNumber  = internalmodel.FieldTypeNumber
	FieldTypeBoolean = internalmodel.FieldTypeBoolean
)

const (
	ValidationRuleMin       = internalmodel.ValidationRuleMin
	ValidationRuleMax       = internalmodel.ValidationRuleMax
	ValidationRuleMinLength = internalmodel.ValidationRuleMinLength
	ValidationRuleMaxLength = internalmodel.ValidationRuleMaxLength
	ValidationRulePattern   = internalmodel.ValidationRulePattern
)

type ValidationRule = internalmodel.ValidationRule
type Field = internalmodel.Field
type FormModel = internalmodel.FormModel
type Decorator = internalmodel.Decorator
type DecoratorFunc = internalmodel.DecoratorFunc

// Builder converts OpenAPI operations into form models.
type Builder interface {
	Build(op pkgopenapi.Operation) (FormModel, error)
}

// BuilderOption customises the canonical builder.
type BuilderOption func(*internalmodel.Options)

// WithLabeler overrides how field names become human-friendly labels.
func WithLabeler(labeler func(string) string) BuilderOption {
	return func(opts *internalmodel.Options) {
		if labeler != nil {
			opts.Labeler = labeler
		}
	}
}

// NewBuilder constructs the canonical form model builder.
func NewBuilder(options ...BuilderOption) Builder {
	opts := internalmodel.Options{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&opts)
	}
	return internalmodel.New(opts)
}

// DefaultLabeler exposes the built-in name humanizer.
func DefaultLabeler(name string) string {
	return internalmodel.DefaultLabeler(name)
}
