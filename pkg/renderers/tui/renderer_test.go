package tui

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/goliatone/go-formpage/pkg/model"
	"github.com/goliatone/go-formpage/pkg/render"
	"github.com/goliatone/go-formpage/pkg/testsupport"
)

// scriptedDriver answers prompts from queues instead of a terminal.
type scriptedDriver struct {
	inputs   []string
	confirms []bool
	selects  []int

	inputConfigs []InputConfig
	err          error
}

func (d *scriptedDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	d.inputConfigs = append(d.inputConfigs, cfg)
	if len(d.inputs) == 0 {
		return "", errors.New("scripted driver: no input queued")
	}
	answer := d.inputs[0]
	d.inputs = d.inputs[1:]
	if cfg.Validator != nil {
		if err := cfg.Validator(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func (d *scriptedDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	if len(d.confirms) == 0 {
		return false, errors.New("scripted driver: no confirm queued")
	}
	answer := d.confirms[0]
	d.confirms = d.confirms[1:]
	return answer, nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	if len(d.selects) == 0 {
		return 0, errors.New("scripted driver: no select queued")
	}
	index := d.selects[0]
	d.selects = d.selects[1:]
	if index < 0 || index >= len(cfg.Options) {
		return 0, errors.New("scripted driver: select out of range")
	}
	return index, nil
}

func TestFill_RegistrationForm(t *testing.T) {
	driver := &scriptedDriver{inputs: []string{"Jane", "Doe", "30"}}
	renderer := New(WithDriver(driver))

	values, err := renderer.Fill(context.Background(), testsupport.RegistrationForm(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("fill: %v", err)
	}

	want := url.Values{
		"firstname": {"Jane"},
		"lastname":  {"Doe"},
		"age":       {"30"},
	}
	if got := values.Encode(); got != want.Encode() {
		t.Fatalf("expected %q, got %q", want.Encode(), got)
	}

	if len(driver.inputConfigs) != 3 {
		t.Fatalf("expected 3 input prompts, got %d", len(driver.inputConfigs))
	}
	if driver.inputConfigs[0].Message != "Firstname" {
		t.Fatalf("expected label as prompt message, got %q", driver.inputConfigs[0].Message)
	}
}

func TestFill_ValidatorRejectsOutOfRangeAge(t *testing.T) {
	driver := &scriptedDriver{inputs: []string{"Jane", "Doe", "200"}}
	renderer := New(WithDriver(driver))

	_, err := renderer.Fill(context.Background(), testsupport.RegistrationForm(), render.RenderOptions{})
	if err == nil {
		t.Fatal("expected validation error for age above maximum")
	}
}

func TestFill_BooleanAndEnumFields(t *testing.T) {
	form := model.FormModel{
		OperationID: "op",
		Endpoint:    "/op",
		Method:      "POST",
		Fields: []model.Field{
			{Name: "newsletter", Type: model.FieldTypeBoolean},
			{Name: "plan", Type: model.FieldTypeString, Enum: []any{"free", "pro"}, Required: true},
		},
	}

	driver := &scriptedDriver{confirms: []bool{true}, selects: []int{1}}
	renderer := New(WithDriver(driver))

	values, err := renderer.Fill(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if got := values.Get("newsletter"); got != "true" {
		t.Fatalf("expected newsletter true, got %q", got)
	}
	if got := values.Get("plan"); got != "pro" {
		t.Fatalf("expected plan pro, got %q", got)
	}
}

func TestFill_OptionalEmptyAnswerSkipped(t *testing.T) {
	form := model.FormModel{
		OperationID: "op",
		Endpoint:    "/op",
		Method:      "POST",
		Fields: []model.Field{
			{Name: "nickname", Type: model.FieldTypeString},
		},
	}

	driver := &scriptedDriver{inputs: []string{""}}
	renderer := New(WithDriver(driver))

	values, err := renderer.Fill(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if _, ok := values["nickname"]; ok {
		t.Fatal("expected empty optional answer to be omitted")
	}
}

func TestFill_HiddenFieldsCarriedThrough(t *testing.T) {
	driver := &scriptedDriver{inputs: []string{"Jane", "Doe", "30"}}
	renderer := New(WithDriver(driver))

	options := render.RenderOptions{
		HiddenFields: map[string]string{"_csrf": "token-123"},
	}
	values, err := renderer.Fill(context.Background(), testsupport.RegistrationForm(), options)
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if got := values.Get("_csrf"); got != "token-123" {
		t.Fatalf("expected csrf token, got %q", got)
	}
}

func TestFill_DriverErrorPropagates(t *testing.T) {
	driver := &scriptedDriver{err: ErrCancelled}
	renderer := New(WithDriver(driver))

	_, err := renderer.Fill(context.Background(), testsupport.RegistrationForm(), render.RenderOptions{})
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected cancellation error, got %v", err)
	}
}

func TestRender_EncodesPayload(t *testing.T) {
	driver := &scriptedDriver{inputs: []string{"Jane", "Doe", "30"}}
	renderer := New(WithDriver(driver))

	output, err := renderer.Render(context.Background(), testsupport.RegistrationForm(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	parsed, err := url.ParseQuery(string(output))
	if err != nil {
		t.Fatalf("parse payload: %v", err)
	}
	if parsed.Get("firstname") != "Jane" || parsed.Get("age") != "30" {
		t.Fatalf("unexpected payload %q", output)
	}
}
