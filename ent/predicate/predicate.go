// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BriefingItem is the predicate function for briefingitem builders.
type BriefingItem func(*sql.Selector)

// Commitment is the predicate function for commitment builders.
type Commitment func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// Goal is the predicate function for goal builders.
type Goal func(*sql.Selector)

// LoginMessage is the predicate function for loginmessage builders.
type LoginMessage func(*sql.Selector)

// MarketSignal is the predicate function for marketsignal builders.
type MarketSignal func(*sql.Selector)

// MeetingDebrief is the predicate function for meetingdebrief builders.
type MeetingDebrief func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// UsageRecord is the predicate function for usagerecord builders.
type UsageRecord func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// WeeklyDigest is the predicate function for weeklydigest builders.
type WeeklyDigest func(*sql.Selector)
