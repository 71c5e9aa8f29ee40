// Code generated by ent, DO NOT EDIT.

package brand

import (
	"fforecasting/server/internal/data/model/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Brand {
	return predicate.Brand(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Brand {
	return predicate.Brand(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Brand {
	return predicate.Brand(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Brand {
	return predicate.Brand(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Brand {
	return predicate.Brand(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Brand {
	return predicate.Brand(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Brand {
	return predicate.Brand(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Brand {
	return predicate.Brand(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Brand {
	return predicate.Brand(sql.FieldLTE(FieldID, id))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v int) predicate.Brand {
	return predicate.Brand(sql.FieldEQ(FieldProfileID, v))
}

// BrandName applies equality check predicate on the "brand_name" field. It's identical to BrandNameEQ.
func BrandName(v string) predicate.Brand {
	return predicate.Brand(sql.FieldEQ(FieldBrandName, v))
}

// BusinessModel applies equality check predicate on the "business_model" field. It's identical to BusinessModelEQ.
func BusinessModel(v string) predicate.Brand {
	return predicate.Brand(sql.FieldEQ(FieldBusinessModel, v))
}

// PriceRange applies equality check predicate on the "price_range" field. It's identical to PriceRangeEQ.
func PriceRange(v string) predicate.Brand {
	return predicate.Brand(sql.FieldEQ(FieldPriceRange, v))
}

// TargetAudience applies equality check predicate on the "target_audience" field. It's identical to TargetAudienceEQ.
func TargetAudience(v string) predicate.Brand {
	return predicate.Brand(sql.FieldEQ(FieldTargetAudience, v))
}

// MainChallenges applies equality check predicate on the "main_challenges" field. It's identical to MainChallengesEQ.
func MainChallenges(v string) predicate.Brand {
	return predicate.Brand(sql.FieldEQ(FieldMainChallenges, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Brand {
	return predicate.Brand(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Brand {
	return predicate.Brand(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v int) predicate.Brand {
	return predicate.Brand(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v int) predicate.Brand {
	return predicate.Brand(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...int) predicate.Brand {
	return predicate.Brand(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...int) predicate.Brand {
	return predicate.Brand(sql.FieldNotIn(FieldProfileID, vs...))
}

// ProfileIDGT applies the GT predicate on the "profile_id" field.
func ProfileIDGT(v int) predicate.Brand {
	return predicate.Brand(sql.FieldGT(FieldProfileID, v))
}

// ProfileIDGTE applies the GTE predicate on the "profile_id" field.
func ProfileIDGTE(v int) predicate.Brand {
	return predicate.Brand(sql.FieldGTE(FieldProfileID, v))
}

// ProfileIDLT applies the LT predicate on the "profile_id" field.
func ProfileIDLT(v int) predicate.Brand {
	return predicate.Brand(sql.FieldLT(FieldProfileID, v))
}

// ProfileIDLTE applies the LTE predicate on the "profile_id" field.
func ProfileIDLTE(v int) predicate.Brand {
	return predicate.Brand(sql.FieldLTE(FieldProfileID, v))
}

// BrandNameEQ applies the EQ predicate on the "brand_name" field.
func BrandNameEQ(v string) predicate.Brand {
	return predicate.Brand(sql.FieldEQ(FieldBrandName, v))
}

// BrandNameNEQ applies the NEQ predicate on the "brand_name" field.
func BrandNameNEQ(v string) predicate.Brand {
	return predicate.Brand(sql.FieldNEQ(FieldBrandName, v))
}

// BrandNameIn applies the In predicate on the "brand_name" field.
func BrandNameIn(vs ...string) predicate.Brand {
	return predicate.Brand(sql.FieldIn(FieldBrandName, vs...))
}

// BrandNameNotIn applies the NotIn predicate on the "brand_name" field.
func BrandNameNotIn(vs ...string) predicate.Brand {
	return predicate.Brand(sql.FieldNotIn(FieldBrandName, vs...))
}

// BrandNameGT applies the GT predicate on the "brand_name" field.
func BrandNameGT(v string) predicate.Brand {
	return predicate.Brand(sql.FieldGT(FieldBrandName, v))
}

// BrandNameGTE applies the GTE predicate on the "brand_name" field.
func BrandNameGTE(v string) predicate.Brand {
	return predicate.Brand(sql.FieldGTE(FieldBrandName, v))
}

// BrandNameLT applies the LT predicate on the "brand_name" field.
func BrandNameLT(v string) predicate.Brand {
	return predicate.Brand(sql.FieldLT(FieldBrandName, v))
}

// BrandNameLTE applies the LTE predicate on the "brand_name" field.
func BrandNameLTE(v string) predicate.Brand {
	return predicate.Brand(sql.FieldLTE(FieldBrandName, v))
}

// BrandNameContains applies the Contains predicate on the "brand_name" field.
func BrandNameContains(v string) predicate.Brand {
	return predicate.Brand(sql.FieldContains(FieldBrandName, v))
}

// BrandNameHasPrefix applies the HasPrefix predicate on the "brand_name" field.
func BrandNameHasPrefix(v string) predicate.Brand {
	return predicate.Brand(sql.FieldHasPrefix(FieldBrandName, v))
}

// BrandNameHasSuffix applies the HasSuffix predicate on the "brand_name" field.
func BrandNameHasSuffix(v string) predicate.Brand {
	return predicate.Brand(sql.FieldHasSuffix(FieldBrandName, v))
}

// BrandNameEqualFold applies the EqualFold predicate on the "brand_name" field.
func BrandNameEqualFold(v string) predicate.Brand {
	return predicate.Brand(sql.FieldEqualFold(FieldBrandName, v))
}

// BrandNameContainsFold applies the ContainsFold predicate on the "brand_name" field.
func BrandNameContainsFold(v string) predicate.Brand {
	return predicate.Brand(sql.FieldContainsFold(FieldBrandName, v))
}

// BusinessModelEQ applies the EQ predicate on the "business_model" field.
func BusinessModelEQ(v string) predicate.Brand {
	return predicate.Brand(sql.FieldEQ(FieldBusinessModel, v))
}

// BusinessModelNEQ applies the NEQ predicate on the "business_model" field.
func BusinessModelNEQ(v string) predicate.Brand {
	return predicate.Brand(sql.FieldNEQ(FieldBusinessModel, v))
}

// BusinessModelIn applies the In predicate on the "business_model" field.
func BusinessModelIn(vs ...string) predicate.Brand {
	return predicate.Brand(sql.FieldIn(FieldBusinessModel, vs...))
}

// BusinessModelNotIn applies the NotIn predicate on the "business_model" field.
func BusinessModelNotIn(vs ...string) predicate.Brand {
	return predicate.Brand(sql.FieldNotIn(FieldBusinessModel, vs...))
}

// BusinessModelGT applies the GT predicate on the "business_model" field.
func BusinessModelGT(v string) predicate.Brand {
	return predicate.Brand(sql.FieldGT(FieldBusinessModel, v))
}

// BusinessModelGTE applies the GTE predicate on the "business_model" field.
func BusinessModelGTE(v string) predicate.Brand {
	return predicate.Brand(sql.FieldGTE(FieldBusinessModel, v))
}

// BusinessModelLT applies the LT predicate on the "business_model" field.
func BusinessModelLT(v string) predicate.Brand {
	return predicate.Brand(sql.FieldLT(FieldBusinessModel, v))
}

// BusinessModelLTE applies the LTE predicate on the "business_model" field.
func BusinessModelLTE(v string) predicate.Brand {
	return predicate.Brand(sql.FieldLTE(FieldBusinessModel, v))
}

// BusinessModelContains applies the Contains predicate on the "business_model" field.
func BusinessModelContains(v string) predicate.Brand {
	return predicate.Brand(sql.FieldContains(FieldBusinessModel, v))
}

// BusinessModelHasPrefix applies the HasPrefix predicate on the "business_model" field.
func BusinessModelHasPrefix(v string) predicate.Brand {
	return predicate.Brand(sql.FieldHasPrefix(FieldBusinessModel, v))
}

// BusinessModelHasSuffix applies the HasSuffix predicate on the "business_model" field.
func BusinessModelHasSuffix(v string) predicate.Brand {
	return predicate.Brand(sql.FieldHasSuffix(FieldBusinessModel, v))
}

// BusinessModelEqualFold applies the EqualFold predicate on the "business_model" field.
func BusinessModelEqualFold(v string) predicate.Brand {
	return predicate.Brand(sql.FieldEqualFold(FieldBusinessModel, v))
}

// BusinessModelContainsFold applies the ContainsFold predicate on the "business_model" field.
func BusinessModelContainsFold(v string) predicate.Brand {
	return predicate.Brand(sql.FieldContainsFold(FieldBusinessModel, v))
}

// PriceRangeEQ applies the EQ predicate on the "price_range" field.
func PriceRangeEQ(v string) predicate.Brand {
	return predicate.Brand(sql.FieldEQ(FieldPriceRange, v))
}

// PriceRangeNEQ applies the NEQ predicate on the "price_range" field.
func PriceRangeNEQ(v string) predicate.Brand {
	return predicate.Brand(sql.FieldNEQ(FieldPriceRange, v))
}

// PriceRangeIn applies the In predicate on the "price_range" field.
func PriceRangeIn(vs ...string) predicate.Brand {
	return predicate.Brand(sql.FieldIn(FieldPriceRange, vs...))
}

// PriceRangeNotIn applies the NotIn predicate on the "price_range" field.
func PriceRangeNotIn(vs ...string) predicate.Brand {
	return predicate.Brand(sql.FieldNotIn(FieldPriceRange, vs...))
}

// PriceRangeGT applies the GT predicate on the "price_range" field.
func PriceRangeGT(v string) predicate.Brand {
	return predicate.Brand(sql.FieldGT(FieldPriceRange, v))
}

// PriceRangeGTE applies the GTE predicate on the "price_range" field.
func PriceRangeGTE(v string) predicate.Brand {
	return predicate.Brand(sql.FieldGTE(FieldPriceRange, v))
}

// PriceRangeLT applies the LT predicate on the "price_range" field.
func PriceRangeLT(v string) predicate.Brand {
	return predicate.Brand(sql.FieldLT(FieldPriceRange, v))
}

// PriceRangeLTE applies the LTE predicate on the "price_range" field.
func PriceRangeLTE(v string) predicate.Brand {
	return predicate.Brand(sql.FieldLTE(FieldPriceRange, v))
}

// PriceRangeContains applies the Contains predicate on the "price_range" field.
func PriceRangeContains(v string) predicate.Brand {
	return predicate.Brand(sql.FieldContains(FieldPriceRange, v))
}

// PriceRangeHasPrefix applies the HasPrefix predicate on the "price_range" field.
func PriceRangeHasPrefix(v string) predicate.Brand {
	return predicate.Brand(sql.FieldHasPrefix(FieldPriceRange, v))
}

// PriceRangeHasSuffix applies the HasSuffix predicate on the "price_range" field.
func PriceRangeHasSuffix(v string) predicate.Brand {
	return predicate.Brand(sql.FieldHasSuffix(FieldPriceRange, v))
}

// PriceRangeEqualFold applies the EqualFold predicate on the "price_range" field.
func PriceRangeEqualFold(v string) predicate.Brand {
	return predicate.Brand(sql.FieldEqualFold(FieldPriceRange, v))
}

// PriceRangeContainsFold applies the ContainsFold predicate on the "price_range" field.
func PriceRangeContainsFold(v string) predicate.Brand {
	return predicate.Brand(sql.FieldContainsFold(FieldPriceRange, v))
}

// TargetAudienceEQ applies the EQ predicate on the "target_audience" field.
func TargetAudienceEQ(v string) predicate.Brand {
	return predicate.Brand(sql.FieldEQ(FieldTargetAudience, v))
}

// TargetAudienceNEQ applies the NEQ predicate on the "target_audience" field.
func TargetAudienceNEQ(v string) predicate.Brand {
	return predicate.Brand(sql.FieldNEQ(FieldTargetAudience, v))
}

// TargetAudienceIn applies the In predicate on the "target_audience" field.
func TargetAudienceIn(vs ...string) predicate.Brand {
	return predicate.Brand(sql.FieldIn(FieldTargetAudience, vs...))
}

// TargetAudienceNotIn applies the NotIn predicate on the "target_audience" field.
func TargetAudienceNotIn(vs ...string) predicate.Brand {
	return predicate.Brand(sql.FieldNotIn(FieldTargetAudience, vs...))
}

// TargetAudienceGT applies the GT predicate on the "target_audience" field.
func TargetAudienceGT(v string) predicate.Brand {
	return predicate.Brand(sql.FieldGT(FieldTargetAudience, v))
}

// TargetAudienceGTE applies the GTE predicate on the "target_audience" field.
func TargetAudienceGTE(v string) predicate.Brand {
	return predicate.Brand(sql.FieldGTE(FieldTargetAudience, v))
}

// TargetAudienceLT applies the LT predicate on the "target_audience" field.
func TargetAudienceLT(v string) predicate.Brand {
	return predicate.Brand(sql.FieldLT(FieldTargetAudience, v))
}

// TargetAudienceLTE applies the LTE predicate on the "target_audience" field.
func TargetAudienceLTE(v string) predicate.Brand {
	return predicate.Brand(sql.FieldLTE(FieldTargetAudience, v))
}

// TargetAudienceContains applies the Contains predicate on the "target_audience" field.
func TargetAudienceContains(v string) predicate.Brand {
	return predicate.Brand(sql.FieldContains(FieldTargetAudience, v))
}

// TargetAudienceHasPrefix applies the HasPrefix predicate on the "target_audience" field.
func TargetAudienceHasPrefix(v string) predicate.Brand {
	return predicate.Brand(sql.FieldHasPrefix(FieldTargetAudience, v))
}

// TargetAudienceHasSuffix applies the HasSuffix predicate on the "target_audience" field.
func TargetAudienceHasSuffix(v string) predicate.Brand {
	return predicate.Brand(sql.FieldHasSuffix(FieldTargetAudience, v))
}

// TargetAudienceEqualFold applies the EqualFold predicate on the "target_audience" field.
func TargetAudienceEqualFold(v string) predicate.Brand {
	return predicate.Brand(sql.FieldEqualFold(FieldTargetAudience, v))
}

// TargetAudienceContainsFold applies the ContainsFold predicate on the "target_audience" field.
func TargetAudienceContainsFold(v string) predicate.Brand {
	return predicate.Brand(sql.FieldContainsFold(FieldTargetAudience, v))
}

// MainChallengesEQ applies the EQ predicate on the "main_challenges" field.
func MainChallengesEQ(v string) predicate.Brand {
	return predicate.Brand(sql.FieldEQ(FieldMainChallenges, v))
}

// MainChallengesNEQ applies the NEQ predicate on the "main_challenges" field.
func MainChallengesNEQ(v string) predicate.Brand {
	return predicate.Brand(sql.FieldNEQ(FieldMainChallenges, v))
}

// MainChallengesIn applies the In predicate on the "main_challenges" field.
func MainChallengesIn(vs ...string) predicate.Brand {
	return predicate.Brand(sql.FieldIn(FieldMainChallenges, vs...))
}

// MainChallengesNotIn applies the NotIn predicate on the "main_challenges" field.
func MainChallengesNotIn(vs ...string) predicate.Brand {
	return predicate.Brand(sql.FieldNotIn(FieldMainChallenges, vs...))
}

// MainChallengesGT applies the GT predicate on the "main_challenges" field.
func MainChallengesGT(v string) predicate.Brand {
	return predicate.Brand(sql.FieldGT(FieldMainChallenges, v))
}

// MainChallengesGTE applies the GTE predicate on the "main_challenges" field.
func MainChallengesGTE(v string) predicate.Brand {
	return predicate.Brand(sql.FieldGTE(FieldMainChallenges, v))
}

// MainChallengesLT applies the LT predicate on the "main_challenges" field.
func MainChallengesLT(v string) predicate.Brand {
	return predicate.Brand(sql.FieldLT(FieldMainChallenges, v))
}

// MainChallengesLTE applies the LTE predicate on the "main_challenges" field.
func MainChallengesLTE(v string) predicate.Brand {
	return predicate.Brand(sql.FieldLTE(FieldMainChallenges, v))
}

// MainChallengesContains applies the Contains predicate on the "main_challenges" field.
func MainChallengesContains(v string) predicate.Brand {
	return predicate.Brand(sql.FieldContains(FieldMainChallenges, v))
}

// MainChallengesHasPrefix applies the HasPrefix predicate on the "main_challenges" field.
func MainChallengesHasPrefix(v string) predicate.Brand {
	return predicate.Brand(sql.FieldHasPrefix(FieldMainChallenges, v))
}

// MainChallengesHasSuffix applies the HasSuffix predicate on the "main_challenges" field.
func MainChallengesHasSuffix(v string) predicate.Brand {
	return predicate.Brand(sql.FieldHasSuffix(FieldMainChallenges, v))
}

// MainChallengesIsNil applies the IsNil predicate on the "main_challenges" field.
func MainChallengesIsNil() predicate.Brand {
	return predicate.Brand(sql.FieldIsNull(FieldMainChallenges))
}

// MainChallengesNotNil applies the NotNil predicate on the "main_challenges" field.
func MainChallengesNotNil() predicate.Brand {
	return predicate.Brand(sql.FieldNotNull(FieldMainChallenges))
}

// MainChallengesEqualFold applies the EqualFold predicate on the "main_challenges" field.
func MainChallengesEqualFold(v string) predicate.Brand {
	return predicate.Brand(sql.FieldEqualFold(FieldMainChallenges, v))
}

// MainChallengesContainsFold applies the ContainsFold predicate on the "main_challenges" field.
func MainChallengesContainsFold(v string) predicate.Brand {
	return predicate.Brand(sql.FieldContainsFold(FieldMainChallenges, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Brand {
	return predicate.Brand(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Brand {
	return predicate.Brand(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Brand {
	return predicate.Brand(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Brand {
	return predicate.Brand(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Brand {
	return predicate.Brand(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Brand {
	return predicate.Brand(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Brand {
	return predicate.Brand(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Brand {
	return predicate.Brand(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Brand {
	return predicate.Brand(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Brand {
	return predicate.Brand(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Brand {
	return predicate.Brand(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Brand {
	return predicate.Brand(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Brand {
	return predicate.Brand(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Brand {
	return predicate.Brand(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Brand {
	return predicate.Brand(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Brand {
	return predicate.Brand(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Brand) predicate.Brand {
	return predicate.Brand(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Brand) predicate.Brand {
	return predicate.Brand(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Brand) predicate.Brand {
	return predicate.Brand(sql.NotPredicates(p))
}
