// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fforecasting/server/internal/data/model/ent/account"
	"fforecasting/server/internal/data/model/ent/brand"
	"fforecasting/server/internal/data/model/ent/invite"
	"fforecasting/server/internal/data/model/ent/profile"
	"fforecasting/server/internal/data/model/ent/stylist"
	"fforecasting/server/internal/data/model/schema"
	"time"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescEmail is the schema descriptor for email field.
	accountDescEmail := accountFields[0].Descriptor()
	// account.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	account.EmailValidator = func() func(string) error {
		validators := accountDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// accountDescPasswordHash is the schema descriptor for password_hash field.
	accountDescPasswordHash := accountFields[1].Descriptor()
	// account.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	account.PasswordHashValidator = accountDescPasswordHash.Validators[0].(func(string) error)
	// accountDescDisabled is the schema descriptor for disabled field.
	accountDescDisabled := accountFields[2].Descriptor()
	// account.DefaultDisabled holds the default value on creation for the disabled field.
	account.DefaultDisabled = accountDescDisabled.Default.(bool)
	// accountDescCreatedAt is the schema descriptor for created_at field.
	accountDescCreatedAt := accountFields[4].Descriptor()
	// account.DefaultCreatedAt holds the default value on creation for the created_at field.
	account.DefaultCreatedAt = accountDescCreatedAt.Default.(func() time.Time)
	// accountDescUpdatedAt is the schema descriptor for updated_at field.
	accountDescUpdatedAt := accountFields[5].Descriptor()
	// account.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	account.DefaultUpdatedAt = accountDescUpdatedAt.Default.(func() time.Time)
	// account.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	account.UpdateDefaultUpdatedAt = accountDescUpdatedAt.UpdateDefault.(func() time.Time)
	brandFields := schema.Brand{}.Fields()
	_ = brandFields
	// brandDescBrandName is the schema descriptor for brand_name field.
	brandDescBrandName := brandFields[1].Descriptor()
	// brand.BrandNameValidator is a validator for the "brand_name" field. It is called by the builders before save.
	brand.BrandNameValidator = func() func(string) error {
		validators := brandDescBrandName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(brand_name string) error {
			for _, fn := range fns {
				if err := fn(brand_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// brandDescBusinessModel is the schema descriptor for business_model field.
	brandDescBusinessModel := brandFields[2].Descriptor()
	// brand.BusinessModelValidator is a validator for the "business_model" field. It is called by the builders before save.
	brand.BusinessModelValidator = func() func(string) error {
		validators := brandDescBusinessModel.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(business_model string) error {
			for _, fn := range fns {
				if err := fn(business_model); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// brandDescPriceRange is the schema descriptor for price_range field.
	brandDescPriceRange := brandFields[3].Descriptor()
	// brand.PriceRangeValidator is a validator for the "price_range" field. It is called by the builders before save.
	brand.PriceRangeValidator = func() func(string) error {
		validators := brandDescPriceRange.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(price_range string) error {
			for _, fn := range fns {
				if err := fn(price_range); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// brandDescTargetAudience is the schema descriptor for target_audience field.
	brandDescTargetAudience := brandFields[4].Descriptor()
	// brand.TargetAudienceValidator is a validator for the "target_audience" field. It is called by the builders before save.
	brand.TargetAudienceValidator = func() func(string) error {
		validators := brandDescTargetAudience.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(target_audience string) error {
			for _, fn := range fns {
				if err := fn(target_audience); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// brandDescCreatedAt is the schema descriptor for created_at field.
	brandDescCreatedAt := brandFields[6].Descriptor()
	// brand.DefaultCreatedAt holds the default value on creation for the created_at field.
	brand.DefaultCreatedAt = brandDescCreatedAt.Default.(func() time.Time)
	// brandDescUpdatedAt is the schema descriptor for updated_at field.
	brandDescUpdatedAt := brandFields[7].Descriptor()
	// brand.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	brand.DefaultUpdatedAt = brandDescUpdatedAt.Default.(func() time.Time)
	// brand.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	brand.UpdateDefaultUpdatedAt = brandDescUpdatedAt.UpdateDefault.(func() time.Time)
	inviteFields := schema.Invite{}.Fields()
	_ = inviteFields
	// inviteDescCode is the schema descriptor for code field.
	inviteDescCode := inviteFields[0].Descriptor()
	// invite.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	invite.CodeValidator = func() func(string) error {
		validators := inviteDescCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(code string) error {
			for _, fn := range fns {
				if err := fn(code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// inviteDescBrandName is the schema descriptor for brand_name field.
	inviteDescBrandName := inviteFields[1].Descriptor()
	// invite.BrandNameValidator is a validator for the "brand_name" field. It is called by the builders before save.
	invite.BrandNameValidator = func() func(string) error {
		validators := inviteDescBrandName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(brand_name string) error {
			for _, fn := range fns {
				if err := fn(brand_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// inviteDescBrandEmail is the schema descriptor for brand_email field.
	inviteDescBrandEmail := inviteFields[2].Descriptor()
	// invite.BrandEmailValidator is a validator for the "brand_email" field. It is called by the builders before save.
	invite.BrandEmailValidator = func() func(string) error {
		validators := inviteDescBrandEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(brand_email string) error {
			for _, fn := range fns {
				if err := fn(brand_email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// inviteDescCreatedAt is the schema descriptor for created_at field.
	inviteDescCreatedAt := inviteFields[7].Descriptor()
	// invite.DefaultCreatedAt holds the default value on creation for the created_at field.
	invite.DefaultCreatedAt = inviteDescCreatedAt.Default.(func() time.Time)
	// inviteDescUpdatedAt is the schema descriptor for updated_at field.
	inviteDescUpdatedAt := inviteFields[8].Descriptor()
	// invite.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invite.DefaultUpdatedAt = inviteDescUpdatedAt.Default.(func() time.Time)
	// invite.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invite.UpdateDefaultUpdatedAt = inviteDescUpdatedAt.UpdateDefault.(func() time.Time)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescFullName is the schema descriptor for full_name field.
	profileDescFullName := profileFields[1].Descriptor()
	// profile.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	profile.FullNameValidator = func() func(string) error {
		validators := profileDescFullName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(full_name string) error {
			for _, fn := range fns {
				if err := fn(full_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// profileDescEmail is the schema descriptor for email field.
	profileDescEmail := profileFields[2].Descriptor()
	// profile.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	profile.EmailValidator = func() func(string) error {
		validators := profileDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[4].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[5].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	stylistFields := schema.Stylist{}.Fields()
	_ = stylistFields
	// stylistDescExperience is the schema descriptor for experience field.
	stylistDescExperience := stylistFields[1].Descriptor()
	// stylist.ExperienceValidator is a validator for the "experience" field. It is called by the builders before save.
	stylist.ExperienceValidator = func() func(string) error {
		validators := stylistDescExperience.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(experience string) error {
			for _, fn := range fns {
				if err := fn(experience); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// stylistDescPortfolioURL is the schema descriptor for portfolio_url field.
	stylistDescPortfolioURL := stylistFields[2].Descriptor()
	// stylist.PortfolioURLValidator is a validator for the "portfolio_url" field. It is called by the builders before save.
	stylist.PortfolioURLValidator = stylistDescPortfolioURL.Validators[0].(func(string) error)
	// stylistDescPremiumAccess is the schema descriptor for premium_access field.
	stylistDescPremiumAccess := stylistFields[4].Descriptor()
	// stylist.DefaultPremiumAccess holds the default value on creation for the premium_access field.
	stylist.DefaultPremiumAccess = stylistDescPremiumAccess.Default.(bool)
	// stylistDescCreatedAt is the schema descriptor for created_at field.
	stylistDescCreatedAt := stylistFields[5].Descriptor()
	// stylist.DefaultCreatedAt holds the default value on creation for the created_at field.
	stylist.DefaultCreatedAt = stylistDescCreatedAt.Default.(func() time.Time)
	// stylistDescUpdatedAt is the schema descriptor for updated_at field.
	stylistDescUpdatedAt := stylistFields[6].Descriptor()
	// stylist.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	stylist.DefaultUpdatedAt = stylistDescUpdatedAt.Default.(func() time.Time)
	// stylist.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	stylist.UpdateDefaultUpdatedAt = stylistDescUpdatedAt.UpdateDefault.(func() time.Time)
}
