// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ariahq/aria/ent/briefingitem"
	"github.com/ariahq/aria/ent/commitment"
	"github.com/ariahq/aria/ent/conversation"
	"github.com/ariahq/aria/ent/goal"
	"github.com/ariahq/aria/ent/loginmessage"
	"github.com/ariahq/aria/ent/marketsignal"
	"github.com/ariahq/aria/ent/meetingdebrief"
	"github.com/ariahq/aria/ent/message"
	"github.com/ariahq/aria/ent/notification"
	"github.com/ariahq/aria/ent/schema"
	"github.com/ariahq/aria/ent/usagerecord"
	"github.com/ariahq/aria/ent/user"
	"github.com/ariahq/aria/ent/weeklydigest"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	briefingitemFields := schema.BriefingItem{}.Fields()
	_ = briefingitemFields
	// briefingitemDescConsumed is the schema descriptor for consumed field.
	briefingitemDescConsumed := briefingitemFields[6].Descriptor()
	// briefingitem.DefaultConsumed holds the default value on creation for the consumed field.
	briefingitem.DefaultConsumed = briefingitemDescConsumed.Default.(bool)
	// briefingitemDescCreatedAt is the schema descriptor for created_at field.
	briefingitemDescCreatedAt := briefingitemFields[7].Descriptor()
	// briefingitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	briefingitem.DefaultCreatedAt = briefingitemDescCreatedAt.Default.(func() time.Time)
	commitmentFields := schema.Commitment{}.Fields()
	_ = commitmentFields
	// commitmentDescCompleted is the schema descriptor for completed field.
	commitmentDescCompleted := commitmentFields[5].Descriptor()
	// commitment.DefaultCompleted holds the default value on creation for the completed field.
	commitment.DefaultCompleted = commitmentDescCompleted.Default.(bool)
	// commitmentDescCreatedAt is the schema descriptor for created_at field.
	commitmentDescCreatedAt := commitmentFields[7].Descriptor()
	// commitment.DefaultCreatedAt holds the default value on creation for the created_at field.
	commitment.DefaultCreatedAt = commitmentDescCreatedAt.Default.(func() time.Time)
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[3].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	goalFields := schema.Goal{}.Fields()
	_ = goalFields
	// goalDescCreatedAt is the schema descriptor for created_at field.
	goalDescCreatedAt := goalFields[6].Descriptor()
	// goal.DefaultCreatedAt holds the default value on creation for the created_at field.
	goal.DefaultCreatedAt = goalDescCreatedAt.Default.(func() time.Time)
	loginmessageFields := schema.LoginMessage{}.Fields()
	_ = loginmessageFields
	// loginmessageDescDelivered is the schema descriptor for delivered field.
	loginmessageDescDelivered := loginmessageFields[6].Descriptor()
	// loginmessage.DefaultDelivered holds the default value on creation for the delivered field.
	loginmessage.DefaultDelivered = loginmessageDescDelivered.Default.(bool)
	// loginmessageDescCreatedAt is the schema descriptor for created_at field.
	loginmessageDescCreatedAt := loginmessageFields[7].Descriptor()
	// loginmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	loginmessage.DefaultCreatedAt = loginmessageDescCreatedAt.Default.(func() time.Time)
	marketsignalFields := schema.MarketSignal{}.Fields()
	_ = marketsignalFields
	// marketsignalDescRelevance is the schema descriptor for relevance field.
	marketsignalDescRelevance := marketsignalFields[6].Descriptor()
	// marketsignal.DefaultRelevance holds the default value on creation for the relevance field.
	marketsignal.DefaultRelevance = marketsignalDescRelevance.Default.(float64)
	// marketsignalDescCreatedAt is the schema descriptor for created_at field.
	marketsignalDescCreatedAt := marketsignalFields[8].Descriptor()
	// marketsignal.DefaultCreatedAt holds the default value on creation for the created_at field.
	marketsignal.DefaultCreatedAt = marketsignalDescCreatedAt.Default.(func() time.Time)
	meetingdebriefFields := schema.MeetingDebrief{}.Fields()
	_ = meetingdebriefFields
	// meetingdebriefDescPromptedAt is the schema descriptor for prompted_at field.
	meetingdebriefDescPromptedAt := meetingdebriefFields[4].Descriptor()
	// meetingdebrief.DefaultPromptedAt holds the default value on creation for the prompted_at field.
	meetingdebrief.DefaultPromptedAt = meetingdebriefDescPromptedAt.Default.(func() time.Time)
	// meetingdebriefDescCompleted is the schema descriptor for completed field.
	meetingdebriefDescCompleted := meetingdebriefFields[5].Descriptor()
	// meetingdebrief.DefaultCompleted holds the default value on creation for the completed field.
	meetingdebrief.DefaultCompleted = meetingdebriefDescCompleted.Default.(bool)
	// meetingdebriefDescCreatedAt is the schema descriptor for created_at field.
	meetingdebriefDescCreatedAt := meetingdebriefFields[7].Descriptor()
	// meetingdebrief.DefaultCreatedAt holds the default value on creation for the created_at field.
	meetingdebrief.DefaultCreatedAt = meetingdebriefDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[5].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationFields[7].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	usagerecordFields := schema.UsageRecord{}.Fields()
	_ = usagerecordFields
	// usagerecordDescInputTokens is the schema descriptor for input_tokens field.
	usagerecordDescInputTokens := usagerecordFields[2].Descriptor()
	// usagerecord.DefaultInputTokens holds the default value on creation for the input_tokens field.
	usagerecord.DefaultInputTokens = usagerecordDescInputTokens.Default.(int)
	// usagerecordDescOutputTokens is the schema descriptor for output_tokens field.
	usagerecordDescOutputTokens := usagerecordFields[3].Descriptor()
	// usagerecord.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	usagerecord.DefaultOutputTokens = usagerecordDescOutputTokens.Default.(int)
	// usagerecordDescThinkingTokens is the schema descriptor for thinking_tokens field.
	usagerecordDescThinkingTokens := usagerecordFields[4].Descriptor()
	// usagerecord.DefaultThinkingTokens holds the default value on creation for the thinking_tokens field.
	usagerecord.DefaultThinkingTokens = usagerecordDescThinkingTokens.Default.(int)
	// usagerecordDescCacheReadTokens is the schema descriptor for cache_read_tokens field.
	usagerecordDescCacheReadTokens := usagerecordFields[5].Descriptor()
	// usagerecord.DefaultCacheReadTokens holds the default value on creation for the cache_read_tokens field.
	usagerecord.DefaultCacheReadTokens = usagerecordDescCacheReadTokens.Default.(int)
	// usagerecordDescCacheCreationTokens is the schema descriptor for cache_creation_tokens field.
	usagerecordDescCacheCreationTokens := usagerecordFields[6].Descriptor()
	// usagerecord.DefaultCacheCreationTokens holds the default value on creation for the cache_creation_tokens field.
	usagerecord.DefaultCacheCreationTokens = usagerecordDescCacheCreationTokens.Default.(int)
	// usagerecordDescEstimatedCostCents is the schema descriptor for estimated_cost_cents field.
	usagerecordDescEstimatedCostCents := usagerecordFields[7].Descriptor()
	// usagerecord.DefaultEstimatedCostCents holds the default value on creation for the estimated_cost_cents field.
	usagerecord.DefaultEstimatedCostCents = usagerecordDescEstimatedCostCents.Default.(int)
	// usagerecordDescRequestCount is the schema descriptor for request_count field.
	usagerecordDescRequestCount := usagerecordFields[8].Descriptor()
	// usagerecord.DefaultRequestCount holds the default value on creation for the request_count field.
	usagerecord.DefaultRequestCount = usagerecordDescRequestCount.Default.(int)
	// usagerecordDescCreatedAt is the schema descriptor for created_at field.
	usagerecordDescCreatedAt := usagerecordFields[9].Descriptor()
	// usagerecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	usagerecord.DefaultCreatedAt = usagerecordDescCreatedAt.Default.(func() time.Time)
	// usagerecordDescUpdatedAt is the schema descriptor for updated_at field.
	usagerecordDescUpdatedAt := usagerecordFields[10].Descriptor()
	// usagerecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usagerecord.DefaultUpdatedAt = usagerecordDescUpdatedAt.Default.(func() time.Time)
	// usagerecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usagerecord.UpdateDefaultUpdatedAt = usagerecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescTimezone is the schema descriptor for timezone field.
	userDescTimezone := userFields[3].Descriptor()
	// user.DefaultTimezone holds the default value on creation for the timezone field.
	user.DefaultTimezone = userDescTimezone.Default.(string)
	// userDescOnboarded is the schema descriptor for onboarded field.
	userDescOnboarded := userFields[4].Descriptor()
	// user.DefaultOnboarded holds the default value on creation for the onboarded field.
	user.DefaultOnboarded = userDescOnboarded.Default.(bool)
	// userDescDailyTokenBudget is the schema descriptor for daily_token_budget field.
	userDescDailyTokenBudget := userFields[5].Descriptor()
	// user.DefaultDailyTokenBudget holds the default value on creation for the daily_token_budget field.
	user.DefaultDailyTokenBudget = userDescDailyTokenBudget.Default.(int)
	// userDescDailyThinkingBudget is the schema descriptor for daily_thinking_budget field.
	userDescDailyThinkingBudget := userFields[6].Descriptor()
	// user.DefaultDailyThinkingBudget holds the default value on creation for the daily_thinking_budget field.
	user.DefaultDailyThinkingBudget = userDescDailyThinkingBudget.Default.(int)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[10].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	weeklydigestFields := schema.WeeklyDigest{}.Fields()
	_ = weeklydigestFields
	// weeklydigestDescItemCount is the schema descriptor for item_count field.
	weeklydigestDescItemCount := weeklydigestFields[4].Descriptor()
	// weeklydigest.DefaultItemCount holds the default value on creation for the item_count field.
	weeklydigest.DefaultItemCount = weeklydigestDescItemCount.Default.(int)
	// weeklydigestDescCreatedAt is the schema descriptor for created_at field.
	weeklydigestDescCreatedAt := weeklydigestFields[5].Descriptor()
	// weeklydigest.DefaultCreatedAt holds the default value on creation for the created_at field.
	weeklydigest.DefaultCreatedAt = weeklydigestDescCreatedAt.Default.(func() time.Time)
}
