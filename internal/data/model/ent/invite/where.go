// Code generated by ent, DO NOT EDIT.

package invite

import (
	"fforecasting/server/internal/data/model/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Invite {
	return predicate.Invite(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Invite {
	return predicate.Invite(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Invite {
	return predicate.Invite(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Invite {
	return predicate.Invite(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Invite {
	return predicate.Invite(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Invite {
	return predicate.Invite(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Invite {
	return predicate.Invite(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Invite {
	return predicate.Invite(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Invite {
	return predicate.Invite(sql.FieldLTE(FieldID, id))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.Invite {
	return predicate.Invite(sql.FieldEQ(FieldCode, v))
}

// BrandName applies equality check predicate on the "brand_name" field. It's identical to BrandNameEQ.
func BrandName(v string) predicate.Invite {
	return predicate.Invite(sql.FieldEQ(FieldBrandName, v))
}

// BrandEmail applies equality check predicate on the "brand_email" field. It's identical to BrandEmailEQ.
func BrandEmail(v string) predicate.Invite {
	return predicate.Invite(sql.FieldEQ(FieldBrandEmail, v))
}

// StylistID applies equality check predicate on the "stylist_id" field. It's identical to StylistIDEQ.
func StylistID(v int) predicate.Invite {
	return predicate.Invite(sql.FieldEQ(FieldStylistID, v))
}

// BrandID applies equality check predicate on the "brand_id" field. It's identical to BrandIDEQ.
func BrandID(v int) predicate.Invite {
	return predicate.Invite(sql.FieldEQ(FieldBrandID, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.Invite {
	return predicate.Invite(sql.FieldEQ(FieldExpiresAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Invite {
	return predicate.Invite(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Invite {
	return predicate.Invite(sql.FieldEQ(FieldUpdatedAt, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.Invite {
	return predicate.Invite(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.Invite {
	return predicate.Invite(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.Invite {
	return predicate.Invite(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.Invite {
	return predicate.Invite(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.Invite {
	return predicate.Invite(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.Invite {
	return predicate.Invite(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.Invite {
	return predicate.Invite(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.Invite {
	return predicate.Invite(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.Invite {
	return predicate.Invite(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.Invite {
	return predicate.Invite(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.Invite {
	return predicate.Invite(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.Invite {
	return predicate.Invite(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.Invite {
	return predicate.Invite(sql.FieldContainsFold(FieldCode, v))
}

// BrandNameEQ applies the EQ predicate on the "brand_name" field.
func BrandNameEQ(v string) predicate.Invite {
	return predicate.Invite(sql.FieldEQ(FieldBrandName, v))
}

// BrandNameNEQ applies the NEQ predicate on the "brand_name" field.
func BrandNameNEQ(v string) predicate.Invite {
	return predicate.Invite(sql.FieldNEQ(FieldBrandName, v))
}

// BrandNameIn applies the In predicate on the "brand_name" field.
func BrandNameIn(vs ...string) predicate.Invite {
	return predicate.Invite(sql.FieldIn(FieldBrandName, vs...))
}

// BrandNameNotIn applies the NotIn predicate on the "brand_name" field.
func BrandNameNotIn(vs ...string) predicate.Invite {
	return predicate.Invite(sql.FieldNotIn(FieldBrandName, vs...))
}

// BrandNameGT applies the GT predicate on the "brand_name" field.
func BrandNameGT(v string) predicate.Invite {
	return predicate.Invite(sql.FieldGT(FieldBrandName, v))
}

// BrandNameGTE applies the GTE predicate on the "brand_name" field.
func BrandNameGTE(v string) predicate.Invite {
	return predicate.Invite(sql.FieldGTE(FieldBrandName, v))
}

// BrandNameLT applies the LT predicate on the "brand_name" field.
func BrandNameLT(v string) predicate.Invite {
	return predicate.Invite(sql.FieldLT(FieldBrandName, v))
}

// BrandNameLTE applies the LTE predicate on the "brand_name" field.
func BrandNameLTE(v string) predicate.Invite {
	return predicate.Invite(sql.FieldLTE(FieldBrandName, v))
}

// BrandNameContains applies the Contains predicate on the "brand_name" field.
func BrandNameContains(v string) predicate.Invite {
	return predicate.Invite(sql.FieldContains(FieldBrandName, v))
}

// BrandNameHasPrefix applies the HasPrefix predicate on the "brand_name" field.
func BrandNameHasPrefix(v string) predicate.Invite {
	return predicate.Invite(sql.FieldHasPrefix(FieldBrandName, v))
}

// BrandNameHasSuffix applies the HasSuffix predicate on the "brand_name" field.
func BrandNameHasSuffix(v string) predicate.Invite {
	return predicate.Invite(sql.FieldHasSuffix(FieldBrandName, v))
}

// BrandNameEqualFold applies the EqualFold predicate on the "brand_name" field.
func BrandNameEqualFold(v string) predicate.Invite {
	return predicate.Invite(sql.FieldEqualFold(FieldBrandName, v))
}

// BrandNameContainsFold applies the ContainsFold predicate on the "brand_name" field.
func BrandNameContainsFold(v string) predicate.Invite {
	return predicate.Invite(sql.FieldContainsFold(FieldBrandName, v))
}

// BrandEmailEQ applies the EQ predicate on the "brand_email" field.
func BrandEmailEQ(v string) predicate.Invite {
	return predicate.Invite(sql.FieldEQ(FieldBrandEmail, v))
}

// BrandEmailNEQ applies the NEQ predicate on the "brand_email" field.
func BrandEmailNEQ(v string) predicate.Invite {
	return predicate.Invite(sql.FieldNEQ(FieldBrandEmail, v))
}

// BrandEmailIn applies the In predicate on the "brand_email" field.
func BrandEmailIn(vs ...string) predicate.Invite {
	return predicate.Invite(sql.FieldIn(FieldBrandEmail, vs...))
}

// BrandEmailNotIn applies the NotIn predicate on the "brand_email" field.
func BrandEmailNotIn(vs ...string) predicate.Invite {
	return predicate.Invite(sql.FieldNotIn(FieldBrandEmail, vs...))
}

// BrandEmailGT applies the GT predicate on the "brand_email" field.
func BrandEmailGT(v string) predicate.Invite {
	return predicate.Invite(sql.FieldGT(FieldBrandEmail, v))
}

// BrandEmailGTE applies the GTE predicate on the "brand_email" field.
func BrandEmailGTE(v string) predicate.Invite {
	return predicate.Invite(sql.FieldGTE(FieldBrandEmail, v))
}

// BrandEmailLT applies the LT predicate on the "brand_email" field.
func BrandEmailLT(v string) predicate.Invite {
	return predicate.Invite(sql.FieldLT(FieldBrandEmail, v))
}

// BrandEmailLTE applies the LTE predicate on the "brand_email" field.
func BrandEmailLTE(v string) predicate.Invite {
	return predicate.Invite(sql.FieldLTE(FieldBrandEmail, v))
}

// BrandEmailContains applies the Contains predicate on the "brand_email" field.
func BrandEmailContains(v string) predicate.Invite {
	return predicate.Invite(sql.FieldContains(FieldBrandEmail, v))
}

// BrandEmailHasPrefix applies the HasPrefix predicate on the "brand_email" field.
func BrandEmailHasPrefix(v string) predicate.Invite {
	return predicate.Invite(sql.FieldHasPrefix(FieldBrandEmail, v))
}

// BrandEmailHasSuffix applies the HasSuffix predicate on the "brand_email" field.
func BrandEmailHasSuffix(v string) predicate.Invite {
	return predicate.Invite(sql.FieldHasSuffix(FieldBrandEmail, v))
}

// BrandEmailEqualFold applies the EqualFold predicate on the "brand_email" field.
func BrandEmailEqualFold(v string) predicate.Invite {
	return predicate.Invite(sql.FieldEqualFold(FieldBrandEmail, v))
}

// BrandEmailContainsFold applies the ContainsFold predicate on the "brand_email" field.
func BrandEmailContainsFold(v string) predicate.Invite {
	return predicate.Invite(sql.FieldContainsFold(FieldBrandEmail, v))
}

// StylistIDEQ applies the EQ predicate on the "stylist_id" field.
func StylistIDEQ(v int) predicate.Invite {
	return predicate.Invite(sql.FieldEQ(FieldStylistID, v))
}

// StylistIDNEQ applies the NEQ predicate on the "stylist_id" field.
func StylistIDNEQ(v int) predicate.Invite {
	return predicate.Invite(sql.FieldNEQ(FieldStylistID, v))
}

// StylistIDIn applies the In predicate on the "stylist_id" field.
func StylistIDIn(vs ...int) predicate.Invite {
	return predicate.Invite(sql.FieldIn(FieldStylistID, vs...))
}

// StylistIDNotIn applies the NotIn predicate on the "stylist_id" field.
func StylistIDNotIn(vs ...int) predicate.Invite {
	return predicate.Invite(sql.FieldNotIn(FieldStylistID, vs...))
}

// StylistIDGT applies the GT predicate on the "stylist_id" field.
func StylistIDGT(v int) predicate.Invite {
	return predicate.Invite(sql.FieldGT(FieldStylistID, v))
}

// StylistIDGTE applies the GTE predicate on the "stylist_id" field.
func StylistIDGTE(v int) predicate.Invite {
	return predicate.Invite(sql.FieldGTE(FieldStylistID, v))
}

// StylistIDLT applies the LT predicate on the "stylist_id" field.
func StylistIDLT(v int) predicate.Invite {
	return predicate.Invite(sql.FieldLT(FieldStylistID, v))
}

// StylistIDLTE applies the LTE predicate on the "stylist_id" field.
func StylistIDLTE(v int) predicate.Invite {
	return predicate.Invite(sql.FieldLTE(FieldStylistID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Invite {
	return predicate.Invite(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Invite {
	return predicate.Invite(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Invite {
	return predicate.Invite(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Invite {
	return predicate.Invite(sql.FieldNotIn(FieldStatus, vs...))
}

// BrandIDEQ applies the EQ predicate on the "brand_id" field.
func BrandIDEQ(v int) predicate.Invite {
	return predicate.Invite(sql.FieldEQ(FieldBrandID, v))
}

// BrandIDNEQ applies the NEQ predicate on the "brand_id" field.
func BrandIDNEQ(v int) predicate.Invite {
	return predicate.Invite(sql.FieldNEQ(FieldBrandID, v))
}

// BrandIDIn applies the In predicate on the "brand_id" field.
func BrandIDIn(vs ...int) predicate.Invite {
	return predicate.Invite(sql.FieldIn(FieldBrandID, vs...))
}

// BrandIDNotIn applies the NotIn predicate on the "brand_id" field.
func BrandIDNotIn(vs ...int) predicate.Invite {
	return predicate.Invite(sql.FieldNotIn(FieldBrandID, vs...))
}

// BrandIDGT applies the GT predicate on the "brand_id" field.
func BrandIDGT(v int) predicate.Invite {
	return predicate.Invite(sql.FieldGT(FieldBrandID, v))
}

// BrandIDGTE applies the GTE predicate on the "brand_id" field.
func BrandIDGTE(v int) predicate.Invite {
	return predicate.Invite(sql.FieldGTE(FieldBrandID, v))
}

// BrandIDLT applies the LT predicate on the "brand_id" field.
func BrandIDLT(v int) predicate.Invite {
	return predicate.Invite(sql.FieldLT(FieldBrandID, v))
}

// BrandIDLTE applies the LTE predicate on the "brand_id" field.
func BrandIDLTE(v int) predicate.Invite {
	return predicate.Invite(sql.FieldLTE(FieldBrandID, v))
}

// BrandIDIsNil applies the IsNil predicate on the "brand_id" field.
func BrandIDIsNil() predicate.Invite {
	return predicate.Invite(sql.FieldIsNull(FieldBrandID))
}

// BrandIDNotNil applies the NotNil predicate on the "brand_id" field.
func BrandIDNotNil() predicate.Invite {
	return predicate.Invite(sql.FieldNotNull(FieldBrandID))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.Invite {
	return predicate.Invite(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.Invite {
	return predicate.Invite(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.Invite {
	return predicate.Invite(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.Invite {
	return predicate.Invite(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.Invite {
	return predicate.Invite(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.Invite {
	return predicate.Invite(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.Invite {
	return predicate.Invite(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.Invite {
	return predicate.Invite(sql.FieldLTE(FieldExpiresAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Invite {
	return predicate.Invite(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Invite {
	return predicate.Invite(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Invite {
	return predicate.Invite(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Invite {
	return predicate.Invite(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Invite {
	return predicate.Invite(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Invite {
	return predicate.Invite(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Invite {
	return predicate.Invite(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Invite {
	return predicate.Invite(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Invite {
	return predicate.Invite(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Invite {
	return predicate.Invite(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Invite {
	return predicate.Invite(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Invite {
	return predicate.Invite(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Invite {
	return predicate.Invite(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Invite {
	return predicate.Invite(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Invite {
	return predicate.Invite(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Invite {
	return predicate.Invite(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Invite) predicate.Invite {
	return predicate.Invite(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Invite) predicate.Invite {
	return predicate.Invite(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Invite) predicate.Invite {
	return predicate.Invite(sql.NotPredicates(p))
}
