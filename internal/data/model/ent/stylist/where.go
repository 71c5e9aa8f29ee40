// Code generated by ent, DO NOT EDIT.

package stylist

import (
	"fforecasting/server/internal/data/model/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Stylist {
	return predicate.Stylist(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Stylist {
	return predicate.Stylist(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Stylist {
	return predicate.Stylist(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Stylist {
	return predicate.Stylist(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Stylist {
	return predicate.Stylist(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Stylist {
	return predicate.Stylist(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Stylist {
	return predicate.Stylist(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Stylist {
	return predicate.Stylist(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Stylist {
	return predicate.Stylist(sql.FieldLTE(FieldID, id))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v int) predicate.Stylist {
	return predicate.Stylist(sql.FieldEQ(FieldProfileID, v))
}

// Experience applies equality check predicate on the "experience" field. It's identical to ExperienceEQ.
func Experience(v string) predicate.Stylist {
	return predicate.Stylist(sql.FieldEQ(FieldExperience, v))
}

// PortfolioURL applies equality check predicate on the "portfolio_url" field. It's identical to PortfolioURLEQ.
func PortfolioURL(v string) predicate.Stylist {
	return predicate.Stylist(sql.FieldEQ(FieldPortfolioURL, v))
}

// PremiumAccess applies equality check predicate on the "premium_access" field. It's identical to PremiumAccessEQ.
func PremiumAccess(v bool) predicate.Stylist {
	return predicate.Stylist(sql.FieldEQ(FieldPremiumAccess, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Stylist {
	return predicate.Stylist(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Stylist {
	return predicate.Stylist(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v int) predicate.Stylist {
	return predicate.Stylist(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v int) predicate.Stylist {
	return predicate.Stylist(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...int) predicate.Stylist {
	return predicate.Stylist(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...int) predicate.Stylist {
	return predicate.Stylist(sql.FieldNotIn(FieldProfileID, vs...))
}

// ProfileIDGT applies the GT predicate on the "profile_id" field.
func ProfileIDGT(v int) predicate.Stylist {
	return predicate.Stylist(sql.FieldGT(FieldProfileID, v))
}

// ProfileIDGTE applies the GTE predicate on the "profile_id" field.
func ProfileIDGTE(v int) predicate.Stylist {
	return predicate.Stylist(sql.FieldGTE(FieldProfileID, v))
}

// ProfileIDLT applies the LT predicate on the "profile_id" field.
func ProfileIDLT(v int) predicate.Stylist {
	return predicate.Stylist(sql.FieldLT(FieldProfileID, v))
}

// ProfileIDLTE applies the LTE predicate on the "profile_id" field.
func ProfileIDLTE(v int) predicate.Stylist {
	return predicate.Stylist(sql.FieldLTE(FieldProfileID, v))
}

// ExperienceEQ applies the EQ predicate on the "experience" field.
func ExperienceEQ(v string) predicate.Stylist {
	return predicate.Stylist(sql.FieldEQ(FieldExperience, v))
}

// ExperienceNEQ applies the NEQ predicate on the "experience" field.
func ExperienceNEQ(v string) predicate.Stylist {
	return predicate.Stylist(sql.FieldNEQ(FieldExperience, v))
}

// ExperienceIn applies the In predicate on the "experience" field.
func ExperienceIn(vs ...string) predicate.Stylist {
	return predicate.Stylist(sql.FieldIn(FieldExperience, vs...))
}

// ExperienceNotIn applies the NotIn predicate on the "experience" field.
func ExperienceNotIn(vs ...string) predicate.Stylist {
	return predicate.Stylist(sql.FieldNotIn(FieldExperience, vs...))
}

// ExperienceGT applies the GT predicate on the "experience" field.
func ExperienceGT(v string) predicate.Stylist {
	return predicate.Stylist(sql.FieldGT(FieldExperience, v))
}

// ExperienceGTE applies the GTE predicate on the "experience" field.
func ExperienceGTE(v string) predicate.Stylist {
	return predicate.Stylist(sql.FieldGTE(FieldExperience, v))
}

// ExperienceLT applies the LT predicate on the "experience" field.
func ExperienceLT(v string) predicate.Stylist {
	return predicate.Stylist(sql.FieldLT(FieldExperience, v))
}

// ExperienceLTE applies the LTE predicate on the "experience" field.
func ExperienceLTE(v string) predicate.Stylist {
	return predicate.Stylist(sql.FieldLTE(FieldExperience, v))
}

// ExperienceContains applies the Contains predicate on the "experience" field.
func ExperienceContains(v string) predicate.Stylist {
	return predicate.Stylist(sql.FieldContains(FieldExperience, v))
}

// ExperienceHasPrefix applies the HasPrefix predicate on the "experience" field.
func ExperienceHasPrefix(v string) predicate.Stylist {
	return predicate.Stylist(sql.FieldHasPrefix(FieldExperience, v))
}

// ExperienceHasSuffix applies the HasSuffix predicate on the "experience" field.
func ExperienceHasSuffix(v string) predicate.Stylist {
	return predicate.Stylist(sql.FieldHasSuffix(FieldExperience, v))
}

// ExperienceEqualFold applies the EqualFold predicate on the "experience" field.
func ExperienceEqualFold(v string) predicate.Stylist {
	return predicate.Stylist(sql.FieldEqualFold(FieldExperience, v))
}

// ExperienceContainsFold applies the ContainsFold predicate on the "experience" field.
func ExperienceContainsFold(v string) predicate.Stylist {
	return predicate.Stylist(sql.FieldContainsFold(FieldExperience, v))
}

// PortfolioURLEQ applies the EQ predicate on the "portfolio_url" field.
func PortfolioURLEQ(v string) predicate.Stylist {
	return predicate.Stylist(sql.FieldEQ(FieldPortfolioURL, v))
}

// PortfolioURLNEQ applies the NEQ predicate on the "portfolio_url" field.
func PortfolioURLNEQ(v string) predicate.Stylist {
	return predicate.Stylist(sql.FieldNEQ(FieldPortfolioURL, v))
}

// PortfolioURLIn applies the In predicate on the "portfolio_url" field.
func PortfolioURLIn(vs ...string) predicate.Stylist {
	return predicate.Stylist(sql.FieldIn(FieldPortfolioURL, vs...))
}

// PortfolioURLNotIn applies the NotIn predicate on the "portfolio_url" field.
func PortfolioURLNotIn(vs ...string) predicate.Stylist {
	return predicate.Stylist(sql.FieldNotIn(FieldPortfolioURL, vs...))
}

// PortfolioURLGT applies the GT predicate on the "portfolio_url" field.
func PortfolioURLGT(v string) predicate.Stylist {
	return predicate.Stylist(sql.FieldGT(FieldPortfolioURL, v))
}

// PortfolioURLGTE applies the GTE predicate on the "portfolio_url" field.
func PortfolioURLGTE(v string) predicate.Stylist {
	return predicate.Stylist(sql.FieldGTE(FieldPortfolioURL, v))
}

// PortfolioURLLT applies the LT predicate on the "portfolio_url" field.
func PortfolioURLLT(v string) predicate.Stylist {
	return predicate.Stylist(sql.FieldLT(FieldPortfolioURL, v))
}

// PortfolioURLLTE applies the LTE predicate on the "portfolio_url" field.
func PortfolioURLLTE(v string) predicate.Stylist {
	return predicate.Stylist(sql.FieldLTE(FieldPortfolioURL, v))
}

// PortfolioURLContains applies the Contains predicate on the "portfolio_url" field.
func PortfolioURLContains(v string) predicate.Stylist {
	return predicate.Stylist(sql.FieldContains(FieldPortfolioURL, v))
}

// PortfolioURLHasPrefix applies the HasPrefix predicate on the "portfolio_url" field.
func PortfolioURLHasPrefix(v string) predicate.Stylist {
	return predicate.Stylist(sql.FieldHasPrefix(FieldPortfolioURL, v))
}

// PortfolioURLHasSuffix applies the HasSuffix predicate on the "portfolio_url" field.
func PortfolioURLHasSuffix(v string) predicate.Stylist {
	return predicate.Stylist(sql.FieldHasSuffix(FieldPortfolioURL, v))
}

// PortfolioURLIsNil applies the IsNil predicate on the "portfolio_url" field.
func PortfolioURLIsNil() predicate.Stylist {
	return predicate.Stylist(sql.FieldIsNull(FieldPortfolioURL))
}

// PortfolioURLNotNil applies the NotNil predicate on the "portfolio_url" field.
func PortfolioURLNotNil() predicate.Stylist {
	return predicate.Stylist(sql.FieldNotNull(FieldPortfolioURL))
}

// PortfolioURLEqualFold applies the EqualFold predicate on the "portfolio_url" field.
func PortfolioURLEqualFold(v string) predicate.Stylist {
	return predicate.Stylist(sql.FieldEqualFold(FieldPortfolioURL, v))
}

// PortfolioURLContainsFold applies the ContainsFold predicate on the "portfolio_url" field.
func PortfolioURLContainsFold(v string) predicate.Stylist {
	return predicate.Stylist(sql.FieldContainsFold(FieldPortfolioURL, v))
}

// SpecialtiesIsNil applies the IsNil predicate on the "specialties" field.
func SpecialtiesIsNil() predicate.Stylist {
	return predicate.Stylist(sql.FieldIsNull(FieldSpecialties))
}

// SpecialtiesNotNil applies the NotNil predicate on the "specialties" field.
func SpecialtiesNotNil() predicate.Stylist {
	return predicate.Stylist(sql.FieldNotNull(FieldSpecialties))
}

// PremiumAccessEQ applies the EQ predicate on the "premium_access" field.
func PremiumAccessEQ(v bool) predicate.Stylist {
	return predicate.Stylist(sql.FieldEQ(FieldPremiumAccess, v))
}

// PremiumAccessNEQ applies the NEQ predicate on the "premium_access" field.
func PremiumAccessNEQ(v bool) predicate.Stylist {
	return predicate.Stylist(sql.FieldNEQ(FieldPremiumAccess, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Stylist {
	return predicate.Stylist(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Stylist {
	return predicate.Stylist(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Stylist {
	return predicate.Stylist(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Stylist {
	return predicate.Stylist(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Stylist {
	return predicate.Stylist(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Stylist {
	return predicate.Stylist(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Stylist {
	return predicate.Stylist(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Stylist {
	return predicate.Stylist(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Stylist {
	return predicate.Stylist(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Stylist {
	return predicate.Stylist(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Stylist {
	return predicate.Stylist(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Stylist {
	return predicate.Stylist(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Stylist {
	return predicate.Stylist(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Stylist {
	return predicate.Stylist(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Stylist {
	return predicate.Stylist(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Stylist {
	return predicate.Stylist(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Stylist) predicate.Stylist {
	return predicate.Stylist(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Stylist) predicate.Stylist {
	return predicate.Stylist(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Stylist) predicate.Stylist {
	return predicate.Stylist(sql.NotPredicates(p))
}
