// Code generated by ent, DO NOT EDIT.

package weeklydigest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ariahq/aria/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldEQ(FieldUserID, v))
}

// WeekStart applies equality check predicate on the "week_start" field. It's identical to WeekStartEQ.
func WeekStart(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldEQ(FieldWeekStart, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldEQ(FieldContent, v))
}

// ItemCount applies equality check predicate on the "item_count" field. It's identical to ItemCountEQ.
func ItemCount(v int) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldEQ(FieldItemCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldContainsFold(FieldUserID, v))
}

// WeekStartEQ applies the EQ predicate on the "week_start" field.
func WeekStartEQ(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldEQ(FieldWeekStart, v))
}

// WeekStartNEQ applies the NEQ predicate on the "week_start" field.
func WeekStartNEQ(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldNEQ(FieldWeekStart, v))
}

// WeekStartIn applies the In predicate on the "week_start" field.
func WeekStartIn(vs ...string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldIn(FieldWeekStart, vs...))
}

// WeekStartNotIn applies the NotIn predicate on the "week_start" field.
func WeekStartNotIn(vs ...string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldNotIn(FieldWeekStart, vs...))
}

// WeekStartGT applies the GT predicate on the "week_start" field.
func WeekStartGT(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldGT(FieldWeekStart, v))
}

// WeekStartGTE applies the GTE predicate on the "week_start" field.
func WeekStartGTE(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldGTE(FieldWeekStart, v))
}

// WeekStartLT applies the LT predicate on the "week_start" field.
func WeekStartLT(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldLT(FieldWeekStart, v))
}

// WeekStartLTE applies the LTE predicate on the "week_start" field.
func WeekStartLTE(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldLTE(FieldWeekStart, v))
}

// WeekStartContains applies the Contains predicate on the "week_start" field.
func WeekStartContains(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldContains(FieldWeekStart, v))
}

// WeekStartHasPrefix applies the HasPrefix predicate on the "week_start" field.
func WeekStartHasPrefix(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldHasPrefix(FieldWeekStart, v))
}

// WeekStartHasSuffix applies the HasSuffix predicate on the "week_start" field.
func WeekStartHasSuffix(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldHasSuffix(FieldWeekStart, v))
}

// WeekStartEqualFold applies the EqualFold predicate on the "week_start" field.
func WeekStartEqualFold(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldEqualFold(FieldWeekStart, v))
}

// WeekStartContainsFold applies the ContainsFold predicate on the "week_start" field.
func WeekStartContainsFold(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldContainsFold(FieldWeekStart, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldContainsFold(FieldContent, v))
}

// ItemCountEQ applies the EQ predicate on the "item_count" field.
func ItemCountEQ(v int) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldEQ(FieldItemCount, v))
}

// ItemCountNEQ applies the NEQ predicate on the "item_count" field.
func ItemCountNEQ(v int) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldNEQ(FieldItemCount, v))
}

// ItemCountIn applies the In predicate on the "item_count" field.
func ItemCountIn(vs ...int) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldIn(FieldItemCount, vs...))
}

// ItemCountNotIn applies the NotIn predicate on the "item_count" field.
func ItemCountNotIn(vs ...int) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldNotIn(FieldItemCount, vs...))
}

// ItemCountGT applies the GT predicate on the "item_count" field.
func ItemCountGT(v int) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldGT(FieldItemCount, v))
}

// ItemCountGTE applies the GTE predicate on the "item_count" field.
func ItemCountGTE(v int) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldGTE(FieldItemCount, v))
}

// ItemCountLT applies the LT predicate on the "item_count" field.
func ItemCountLT(v int) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldLT(FieldItemCount, v))
}

// ItemCountLTE applies the LTE predicate on the "item_count" field.
func ItemCountLTE(v int) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldLTE(FieldItemCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WeeklyDigest) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WeeklyDigest) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WeeklyDigest) predicate.WeeklyDigest {
	return predicate.WeeklyDigest(sql.NotPredicates(p))
}
