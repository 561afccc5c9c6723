package scoring

import (
	"quizapp/models"
	"quizapp/textmatch"
)

// grade applies the rule of variant v to answer a.
func grade(v models.Variant, a models.Answer, policy textmatch.Policy) bool {
	switch v := v.(type) {
	case models.MultipleChoice:
		return v.HasAnswerKey() && a.OptionIndex != nil && *a.OptionIndex == v.CorrectOptionIndex
	case models.TrueFalse:
		return v.HasAnswerKey() && a.Boolean != nil && *a.Boolean == v.CorrectAnswer
	case models.ShortText:
		given := ""
		if a.Text != nil {
			given = *a.Text
		}
		return policy.Match(v.ReferenceAnswer, given)
	}
	return false
}
