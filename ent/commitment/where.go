// Code generated by ent, DO NOT EDIT.

package commitment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ariahq/aria/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldUserID, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldDescription, v))
}

// Contact applies equality check predicate on the "contact" field. It's identical to ContactEQ.
func Contact(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldContact, v))
}

// DueAt applies equality check predicate on the "due_at" field. It's identical to DueAtEQ.
func DueAt(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldDueAt, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldCompleted, v))
}

// NudgedAt applies equality check predicate on the "nudged_at" field. It's identical to NudgedAtEQ.
func NudgedAt(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldNudgedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContainsFold(FieldUserID, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContainsFold(FieldDescription, v))
}

// ContactEQ applies the EQ predicate on the "contact" field.
func ContactEQ(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldContact, v))
}

// ContactNEQ applies the NEQ predicate on the "contact" field.
func ContactNEQ(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldContact, v))
}

// ContactIn applies the In predicate on the "contact" field.
func ContactIn(vs ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldContact, vs...))
}

// ContactNotIn applies the NotIn predicate on the "contact" field.
func ContactNotIn(vs ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldContact, vs...))
}

// ContactGT applies the GT predicate on the "contact" field.
func ContactGT(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldContact, v))
}

// ContactGTE applies the GTE predicate on the "contact" field.
func ContactGTE(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldContact, v))
}

// ContactLT applies the LT predicate on the "contact" field.
func ContactLT(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldContact, v))
}

// ContactLTE applies the LTE predicate on the "contact" field.
func ContactLTE(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldContact, v))
}

// ContactContains applies the Contains predicate on the "contact" field.
func ContactContains(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContains(FieldContact, v))
}

// ContactHasPrefix applies the HasPrefix predicate on the "contact" field.
func ContactHasPrefix(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldHasPrefix(FieldContact, v))
}

// ContactHasSuffix applies the HasSuffix predicate on the "contact" field.
func ContactHasSuffix(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldHasSuffix(FieldContact, v))
}

// ContactIsNil applies the IsNil predicate on the "contact" field.
func ContactIsNil() predicate.Commitment {
	return predicate.Commitment(sql.FieldIsNull(FieldContact))
}

// ContactNotNil applies the NotNil predicate on the "contact" field.
func ContactNotNil() predicate.Commitment {
	return predicate.Commitment(sql.FieldNotNull(FieldContact))
}

// ContactEqualFold applies the EqualFold predicate on the "contact" field.
func ContactEqualFold(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEqualFold(FieldContact, v))
}

// ContactContainsFold applies the ContainsFold predicate on the "contact" field.
func ContactContainsFold(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContainsFold(FieldContact, v))
}

// DueAtEQ applies the EQ predicate on the "due_at" field.
func DueAtEQ(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldDueAt, v))
}

// DueAtNEQ applies the NEQ predicate on the "due_at" field.
func DueAtNEQ(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldDueAt, v))
}

// DueAtIn applies the In predicate on the "due_at" field.
func DueAtIn(vs ...time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldDueAt, vs...))
}

// DueAtNotIn applies the NotIn predicate on the "due_at" field.
func DueAtNotIn(vs ...time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldDueAt, vs...))
}

// DueAtGT applies the GT predicate on the "due_at" field.
func DueAtGT(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldDueAt, v))
}

// DueAtGTE applies the GTE predicate on the "due_at" field.
func DueAtGTE(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldDueAt, v))
}

// DueAtLT applies the LT predicate on the "due_at" field.
func DueAtLT(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldDueAt, v))
}

// DueAtLTE applies the LTE predicate on the "due_at" field.
func DueAtLTE(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldDueAt, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldCompleted, v))
}

// NudgedAtEQ applies the EQ predicate on the "nudged_at" field.
func NudgedAtEQ(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldNudgedAt, v))
}

// NudgedAtNEQ applies the NEQ predicate on the "nudged_at" field.
func NudgedAtNEQ(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldNudgedAt, v))
}

// NudgedAtIn applies the In predicate on the "nudged_at" field.
func NudgedAtIn(vs ...time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldNudgedAt, vs...))
}

// NudgedAtNotIn applies the NotIn predicate on the "nudged_at" field.
func NudgedAtNotIn(vs ...time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldNudgedAt, vs...))
}

// NudgedAtGT applies the GT predicate on the "nudged_at" field.
func NudgedAtGT(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldNudgedAt, v))
}

// NudgedAtGTE applies the GTE predicate on the "nudged_at" field.
func NudgedAtGTE(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldNudgedAt, v))
}

// NudgedAtLT applies the LT predicate on the "nudged_at" field.
func NudgedAtLT(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldNudgedAt, v))
}

// NudgedAtLTE applies the LTE predicate on the "nudged_at" field.
func NudgedAtLTE(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldNudgedAt, v))
}

// NudgedAtIsNil applies the IsNil predicate on the "nudged_at" field.
func NudgedAtIsNil() predicate.Commitment {
	return predicate.Commitment(sql.FieldIsNull(FieldNudgedAt))
}

// NudgedAtNotNil applies the NotNil predicate on the "nudged_at" field.
func NudgedAtNotNil() predicate.Commitment {
	return predicate.Commitment(sql.FieldNotNull(FieldNudgedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Commitment) predicate.Commitment {
	return predicate.Commitment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Commitment) predicate.Commitment {
	return predicate.Commitment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Commitment) predicate.Commitment {
	return predicate.Commitment(sql.NotPredicates(p))
}
