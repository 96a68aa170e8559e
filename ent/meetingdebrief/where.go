// Code generated by ent, DO NOT EDIT.

package meetingdebrief

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ariahq/aria/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldEQ(FieldUserID, v))
}

// MeetingID applies equality check predicate on the "meeting_id" field. It's identical to MeetingIDEQ.
func MeetingID(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldEQ(FieldMeetingID, v))
}

// MeetingTitle applies equality check predicate on the "meeting_title" field. It's identical to MeetingTitleEQ.
func MeetingTitle(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldEQ(FieldMeetingTitle, v))
}

// PromptedAt applies equality check predicate on the "prompted_at" field. It's identical to PromptedAtEQ.
func PromptedAt(v time.Time) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldEQ(FieldPromptedAt, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldEQ(FieldCompleted, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldContainsFold(FieldUserID, v))
}

// MeetingIDEQ applies the EQ predicate on the "meeting_id" field.
func MeetingIDEQ(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldEQ(FieldMeetingID, v))
}

// MeetingIDNEQ applies the NEQ predicate on the "meeting_id" field.
func MeetingIDNEQ(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldNEQ(FieldMeetingID, v))
}

// MeetingIDIn applies the In predicate on the "meeting_id" field.
func MeetingIDIn(vs ...string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldIn(FieldMeetingID, vs...))
}

// MeetingIDNotIn applies the NotIn predicate on the "meeting_id" field.
func MeetingIDNotIn(vs ...string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldNotIn(FieldMeetingID, vs...))
}

// MeetingIDGT applies the GT predicate on the "meeting_id" field.
func MeetingIDGT(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldGT(FieldMeetingID, v))
}

// MeetingIDGTE applies the GTE predicate on the "meeting_id" field.
func MeetingIDGTE(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldGTE(FieldMeetingID, v))
}

// MeetingIDLT applies the LT predicate on the "meeting_id" field.
func MeetingIDLT(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldLT(FieldMeetingID, v))
}

// MeetingIDLTE applies the LTE predicate on the "meeting_id" field.
func MeetingIDLTE(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldLTE(FieldMeetingID, v))
}

// MeetingIDContains applies the Contains predicate on the "meeting_id" field.
func MeetingIDContains(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldContains(FieldMeetingID, v))
}

// MeetingIDHasPrefix applies the HasPrefix predicate on the "meeting_id" field.
func MeetingIDHasPrefix(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldHasPrefix(FieldMeetingID, v))
}

// MeetingIDHasSuffix applies the HasSuffix predicate on the "meeting_id" field.
func MeetingIDHasSuffix(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldHasSuffix(FieldMeetingID, v))
}

// MeetingIDEqualFold applies the EqualFold predicate on the "meeting_id" field.
func MeetingIDEqualFold(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldEqualFold(FieldMeetingID, v))
}

// MeetingIDContainsFold applies the ContainsFold predicate on the "meeting_id" field.
func MeetingIDContainsFold(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldContainsFold(FieldMeetingID, v))
}

// MeetingTitleEQ applies the EQ predicate on the "meeting_title" field.
func MeetingTitleEQ(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldEQ(FieldMeetingTitle, v))
}

// MeetingTitleNEQ applies the NEQ predicate on the "meeting_title" field.
func MeetingTitleNEQ(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldNEQ(FieldMeetingTitle, v))
}

// MeetingTitleIn applies the In predicate on the "meeting_title" field.
func MeetingTitleIn(vs ...string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldIn(FieldMeetingTitle, vs...))
}

// MeetingTitleNotIn applies the NotIn predicate on the "meeting_title" field.
func MeetingTitleNotIn(vs ...string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldNotIn(FieldMeetingTitle, vs...))
}

// MeetingTitleGT applies the GT predicate on the "meeting_title" field.
func MeetingTitleGT(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldGT(FieldMeetingTitle, v))
}

// MeetingTitleGTE applies the GTE predicate on the "meeting_title" field.
func MeetingTitleGTE(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldGTE(FieldMeetingTitle, v))
}

// MeetingTitleLT applies the LT predicate on the "meeting_title" field.
func MeetingTitleLT(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldLT(FieldMeetingTitle, v))
}

// MeetingTitleLTE applies the LTE predicate on the "meeting_title" field.
func MeetingTitleLTE(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldLTE(FieldMeetingTitle, v))
}

// MeetingTitleContains applies the Contains predicate on the "meeting_title" field.
func MeetingTitleContains(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldContains(FieldMeetingTitle, v))
}

// MeetingTitleHasPrefix applies the HasPrefix predicate on the "meeting_title" field.
func MeetingTitleHasPrefix(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldHasPrefix(FieldMeetingTitle, v))
}

// MeetingTitleHasSuffix applies the HasSuffix predicate on the "meeting_title" field.
func MeetingTitleHasSuffix(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldHasSuffix(FieldMeetingTitle, v))
}

// MeetingTitleEqualFold applies the EqualFold predicate on the "meeting_title" field.
func MeetingTitleEqualFold(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldEqualFold(FieldMeetingTitle, v))
}

// MeetingTitleContainsFold applies the ContainsFold predicate on the "meeting_title" field.
func MeetingTitleContainsFold(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldContainsFold(FieldMeetingTitle, v))
}

// PromptedAtEQ applies the EQ predicate on the "prompted_at" field.
func PromptedAtEQ(v time.Time) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldEQ(FieldPromptedAt, v))
}

// PromptedAtNEQ applies the NEQ predicate on the "prompted_at" field.
func PromptedAtNEQ(v time.Time) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldNEQ(FieldPromptedAt, v))
}

// PromptedAtIn applies the In predicate on the "prompted_at" field.
func PromptedAtIn(vs ...time.Time) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldIn(FieldPromptedAt, vs...))
}

// PromptedAtNotIn applies the NotIn predicate on the "prompted_at" field.
func PromptedAtNotIn(vs ...time.Time) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldNotIn(FieldPromptedAt, vs...))
}

// PromptedAtGT applies the GT predicate on the "prompted_at" field.
func PromptedAtGT(v time.Time) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldGT(FieldPromptedAt, v))
}

// PromptedAtGTE applies the GTE predicate on the "prompted_at" field.
func PromptedAtGTE(v time.Time) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldGTE(FieldPromptedAt, v))
}

// PromptedAtLT applies the LT predicate on the "prompted_at" field.
func PromptedAtLT(v time.Time) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldLT(FieldPromptedAt, v))
}

// PromptedAtLTE applies the LTE predicate on the "prompted_at" field.
func PromptedAtLTE(v time.Time) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldLTE(FieldPromptedAt, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldNEQ(FieldCompleted, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldContainsFold(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MeetingDebrief) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MeetingDebrief) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MeetingDebrief) predicate.MeetingDebrief {
	return predicate.MeetingDebrief(sql.NotPredicates(p))
}
