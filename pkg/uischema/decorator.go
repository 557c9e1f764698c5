package uischema

import "github.com/goliatone/go-formpage/pkg/model"

// Decorator adapts the overlay into the model decoration pipeline.
func (d Document) Decorator() model.Decorator {
	return model.DecoratorFunc(func(form *model.FormModel) error {
		if form == nil || !d.AppliesTo(form.OperationID) {
			return nil
		}

		if d.Title != "" {
			form.Title = d.Title
		}
		if d.Description != "" {
			form.Description = d.Description
		}
		if d.SubmitLabel != "" {
			form.SubmitLabel = d.SubmitLabel
		}

		if len(d.Fields) == 0 {
			return nil
		}
		for i := range form.Fields {
			hints, ok := d.Fields[form.Fields[i].Name]
			if !ok {
				continue
			}
			if hints.Label != "" {
				form.Fields[i].Label = hints.Label
			}
			if hints.Placeholder != "" {
				form.Fields[i].Placeholder = hints.Placeholder
			}
			if hints.Help != "" {
				form.Fields[i].Help = hints.Help
			}
			if hints.Autocomplete != "" {
				form.Fields[i].Autocomplete = hints.Autocomplete
			}
			if hints.Widget != "" {
				form.Fields[i].SetMeta("widget", hints.Widget)
			}
		}
		return nil
	})
}
