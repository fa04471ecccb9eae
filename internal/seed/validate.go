package seed

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/KirkDiggler/rpg-armory/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-armory/internal/entities/hero"
	"github.com/KirkDiggler/rpg-armory/internal/errors"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names so messages match the seed file
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterStructValidation(validateItem, equipment.Item{})
	v.RegisterStructValidation(validateClass, hero.ClassDef{})

	return v
}

func validateItem(sl validator.StructLevel) {
	item := sl.Current().Interface().(equipment.Item)

	if item.ID == "" {
		sl.ReportError(item.ID, "id", "ID", "required", "")
	}
	if !item.Type.IsValid() {
		sl.ReportError(item.Type, "type", "Type", "item_type", string(item.Type))
	}
	if item.Tier < equipment.TierMin || item.Tier > equipment.TierMax {
		sl.ReportError(item.Tier, "tier", "Tier", "tier", fmt.Sprint(item.Tier))
	}
	if item.RelevantSkill != equipment.SkillNone && !item.RelevantSkill.IsValid() {
		sl.ReportError(item.RelevantSkill, "relevant_skill", "RelevantSkill", "skill", string(item.RelevantSkill))
	}
	if item.NotUsableByFemale && item.NotUsableByMale {
		sl.ReportError(item.NotUsableByMale, "not_usable_by_male", "NotUsableByMale", "gender", "")
	}
}

func validateClass(sl validator.StructLevel) {
	class := sl.Current().Interface().(hero.ClassDef)

	if class.ID == "" {
		sl.ReportError(class.ID, "id", "ID", "required", "")
	}
	if len(class.SlotItems) > hero.MaxClassWeaponSlots {
		sl.ReportError(class.SlotItems, "slot_items", "SlotItems", "max", fmt.Sprint(hero.MaxClassWeaponSlots))
	}
	for _, kind := range class.SlotItems {
		if !kind.IsValid() {
			sl.ReportError(class.SlotItems, "slot_items", "SlotItems", "equipment_type", string(kind))
			return
		}
	}
}

// validationError turns validator output into an InvalidArgument error with one meta entry per field
func validationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !stderrors.As(err, &validationErrors) {
		return errors.Wrap(err, "invalid seed file")
	}

	fields := make([]string, 0, len(validationErrors))
	reasons := make(map[string]interface{}, len(validationErrors))
	for _, e := range validationErrors {
		field := e.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}

		reason := e.Tag()
		if e.Param() != "" {
			reason = fmt.Sprintf("%s=%s", e.Tag(), e.Param())
		}
		fields = append(fields, field)
		reasons[field] = reason
	}

	out := errors.InvalidArgumentf("invalid seed file: %s", strings.Join(fields, ", "))
	return out.WithMetaMap(reasons)
}
