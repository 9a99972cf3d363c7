// Package validator provides rule-based validation with translatable error messages.
//
// Rules are built eagerly and evaluated by Apply, which collects every failure
// instead of stopping at the first one:
//
//	err := validator.Apply(
//		validator.RequiredString("title", form.Title),
//		validator.MaxLenString("title", form.Title, 200),
//		slug.Rule("slug", form.Slug),
//	)
//	if ve := validator.ExtractValidationErrors(err); ve != nil {
//		for _, msg := range ve.Get("title") {
//			fmt.Println(msg)
//		}
//	}
//
// Each ValidationError carries a TranslationKey and TranslationValues so the
// caller can replace the default English message:
//
//	ve.Translate(func(key string, values map[string]any) string {
//		return i18n.T(lang, key, values)
//	})
package validator
