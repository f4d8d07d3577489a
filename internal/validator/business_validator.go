package validator

import (
	"strings"

	"github.com/UCAS-CE/cyberhub-service/internal/models"
	"github.com/go-playground/validator/v10"
)

// DefaultEmailDomain is the institutional suffix new registrations
// must carry; deployments override it through SetEmailDomain.
const DefaultEmailDomain = "@smail.ucas.edu.ps"

// BusinessValidator handles business rule validation
type BusinessValidator struct {
	validate    *validator.Validate
	emailDomain string
}

// NewBusinessValidator creates a new business validator
func NewBusinessValidator() *BusinessValidator {
	validate := validator.New()

	bv := &BusinessValidator{
		validate:    validate,
		emailDomain: DefaultEmailDomain,
	}
	bv.registerBusinessRules()

	return bv
}

// SetEmailDomain overrides the institutional email suffix checked by
// the university_email rule.
func (bv *BusinessValidator) SetEmailDomain(domain string) {
	if domain != "" {
		bv.emailDomain = strings.ToLower(domain)
	}
}

// Validate validates business rules for any struct
func (bv *BusinessValidator) Validate(s interface{}) ValidationErrors {
	err := bv.validate.Struct(s)
	if err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

// ValidateRegister validates registration business rules
func (bv *BusinessValidator) ValidateRegister(req *RegisterRequest) ValidationErrors {
	var errors ValidationErrors

	errors = append(errors, bv.Validate(req)...)

	if strings.TrimSpace(req.Name) == "" {
		errors = append(errors, ValidationError{
			Field:   "name",
			Message: "cannot be blank",
			Value:   req.Name,
			Rule:    "business_logic",
		})
	}
	if strings.TrimSpace(req.Major) == "" {
		errors = append(errors, ValidationError{
			Field:   "major",
			Message: "cannot be blank",
			Value:   req.Major,
			Rule:    "business_logic",
		})
	}

	return errors
}

// ValidateRoleChange validates a role update request against the
// promotion matrix.
func (bv *BusinessValidator) ValidateRoleChange(acting, target, newRole models.UserRole) ValidationErrors {
	var errors ValidationErrors

	if !models.ValidRole(newRole) {
		errors = append(errors, ValidationError{
			Field:   "role",
			Message: "must be a valid user role",
			Value:   newRole,
			Rule:    "user_role",
		})
		return errors
	}

	if !models.CanPromote(acting, target, newRole) {
		errors = append(errors, ValidationError{
			Field:   "role",
			Message: "role change not permitted for this target",
			Value:   newRole,
			Rule:    "business_logic",
		})
	}

	return errors
}

// registerBusinessRules registers custom business rule validators
func (bv *BusinessValidator) registerBusinessRules() {
	// Institutional email suffix check
	bv.validate.RegisterValidation("university_email", func(fl validator.FieldLevel) bool {
		email := strings.ToLower(strings.TrimSpace(fl.Field().String()))
		return strings.HasSuffix(email, bv.emailDomain)
	})

	// Role validation
	bv.validate.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		return models.ValidRole(models.UserRole(fl.Field().String()))
	})

	// Resource origin validation
	bv.validate.RegisterValidation("resource_origin", func(fl validator.FieldLevel) bool {
		switch models.ResourceOrigin(fl.Field().String()) {
		case models.OriginOfficial, models.OriginPractical, models.OriginCommunity:
			return true
		}
		return false
	})

	// Resource type validation
	bv.validate.RegisterValidation("resource_type", func(fl validator.FieldLevel) bool {
		switch models.ResourceType(fl.Field().String()) {
		case models.ResourceSummary, models.ResourceVideo, models.ResourceTool, models.ResourceCert, models.ResourceArticle:
			return true
		}
		return false
	})

	// Report resolution action
	bv.validate.RegisterValidation("report_action", func(fl validator.FieldLevel) bool {
		switch models.ReportAction(fl.Field().String()) {
		case models.ReportDismiss, models.ReportTakeDown:
			return true
		}
		return false
	})

	// Meeting request decision
	bv.validate.RegisterValidation("meeting_action", func(fl validator.FieldLevel) bool {
		switch models.MeetingRequestStatus(fl.Field().String()) {
		case models.RequestAccepted, models.RequestRejected:
			return true
		}
		return false
	})

	// Question title validation (1-200 characters)
	bv.validate.RegisterValidation("question_title", func(fl validator.FieldLevel) bool {
		title := strings.TrimSpace(fl.Field().String())
		return len(title) >= 1 && len(title) <= 200
	})
}
