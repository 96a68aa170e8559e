// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BriefingQueueColumns holds the columns for the "briefing_queue" table.
	BriefingQueueColumns = []*schema.Column{
		{Name: "item_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "consumed", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BriefingQueueTable holds the schema information for the "briefing_queue" table.
	BriefingQueueTable = &schema.Table{
		Name:       "briefing_queue",
		Columns:    BriefingQueueColumns,
		PrimaryKey: []*schema.Column{BriefingQueueColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "briefingitem_user_id_consumed_created_at",
				Unique:  false,
				Columns: []*schema.Column{BriefingQueueColumns[1], BriefingQueueColumns[6], BriefingQueueColumns[7]},
			},
		},
	}
	// CommitmentsColumns holds the columns for the "commitments" table.
	CommitmentsColumns = []*schema.Column{
		{Name: "commitment_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "contact", Type: field.TypeString, Nullable: true},
		{Name: "due_at", Type: field.TypeTime},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "nudged_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CommitmentsTable holds the schema information for the "commitments" table.
	CommitmentsTable = &schema.Table{
		Name:       "commitments",
		Columns:    CommitmentsColumns,
		PrimaryKey: []*schema.Column{CommitmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "commitment_user_id_completed_due_at",
				Unique:  false,
				Columns: []*schema.Column{CommitmentsColumns[1], CommitmentsColumns[5], CommitmentsColumns[4]},
			},
		},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "conversation_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_message_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeString},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conversations_users_conversations",
				Columns:    []*schema.Column{ConversationsColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_user_id_last_message_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[4], ConversationsColumns[3]},
			},
		},
	}
	// GoalsColumns holds the columns for the "goals" table.
	GoalsColumns = []*schema.Column{
		{Name: "goal_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "completed", "abandoned"}, Default: "active"},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// GoalsTable holds the schema information for the "goals" table.
	GoalsTable = &schema.Table{
		Name:       "goals",
		Columns:    GoalsColumns,
		PrimaryKey: []*schema.Column{GoalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "goal_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{GoalsColumns[1], GoalsColumns[3]},
			},
		},
	}
	// LoginMessageQueueColumns holds the columns for the "login_message_queue" table.
	LoginMessageQueueColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "delivered", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LoginMessageQueueTable holds the schema information for the "login_message_queue" table.
	LoginMessageQueueTable = &schema.Table{
		Name:       "login_message_queue",
		Columns:    LoginMessageQueueColumns,
		PrimaryKey: []*schema.Column{LoginMessageQueueColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "loginmessage_user_id_delivered_created_at",
				Unique:  false,
				Columns: []*schema.Column{LoginMessageQueueColumns[1], LoginMessageQueueColumns[6], LoginMessageQueueColumns[7]},
			},
		},
	}
	// MarketSignalsColumns holds the columns for the "market_signals" table.
	MarketSignalsColumns = []*schema.Column{
		{Name: "signal_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "entity", Type: field.TypeString},
		{Name: "headline", Type: field.TypeString},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "source", Type: field.TypeString, Nullable: true},
		{Name: "relevance", Type: field.TypeFloat64, Default: 0},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MarketSignalsTable holds the schema information for the "market_signals" table.
	MarketSignalsTable = &schema.Table{
		Name:       "market_signals",
		Columns:    MarketSignalsColumns,
		PrimaryKey: []*schema.Column{MarketSignalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "marketsignal_user_id_headline",
				Unique:  true,
				Columns: []*schema.Column{MarketSignalsColumns[1], MarketSignalsColumns[3]},
			},
			{
				Name:    "marketsignal_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MarketSignalsColumns[1], MarketSignalsColumns[8]},
			},
		},
	}
	// MeetingDebriefsColumns holds the columns for the "meeting_debriefs" table.
	MeetingDebriefsColumns = []*schema.Column{
		{Name: "debrief_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "meeting_id", Type: field.TypeString},
		{Name: "meeting_title", Type: field.TypeString},
		{Name: "prompted_at", Type: field.TypeTime},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MeetingDebriefsTable holds the schema information for the "meeting_debriefs" table.
	MeetingDebriefsTable = &schema.Table{
		Name:       "meeting_debriefs",
		Columns:    MeetingDebriefsColumns,
		PrimaryKey: []*schema.Column{MeetingDebriefsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "meetingdebrief_user_id_meeting_id",
				Unique:  true,
				Columns: []*schema.Column{MeetingDebriefsColumns[1], MeetingDebriefsColumns[2]},
			},
			{
				Name:    "meetingdebrief_user_id_completed",
				Unique:  false,
				Columns: []*schema.Column{MeetingDebriefsColumns[1], MeetingDebriefsColumns[5]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant", "system"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_conversations_messages",
				Columns:    []*schema.Column{MessagesColumns[5]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_conversation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[5], MessagesColumns[4]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "notification_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "type", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "link", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1], NotificationsColumns[7]},
			},
			{
				Name:    "notification_user_id_type_title_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1], NotificationsColumns[2], NotificationsColumns[3], NotificationsColumns[7]},
			},
		},
	}
	// UsageTrackingColumns holds the columns for the "usage_tracking" table.
	UsageTrackingColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "usage_date", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "extended_thinking_tokens", Type: field.TypeInt, Default: 0},
		{Name: "cache_read_tokens", Type: field.TypeInt, Default: 0},
		{Name: "cache_creation_tokens", Type: field.TypeInt, Default: 0},
		{Name: "estimated_cost_cents", Type: field.TypeInt, Default: 0},
		{Name: "request_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsageTrackingTable holds the schema information for the "usage_tracking" table.
	UsageTrackingTable = &schema.Table{
		Name:       "usage_tracking",
		Columns:    UsageTrackingColumns,
		PrimaryKey: []*schema.Column{UsageTrackingColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "usagerecord_user_id_usage_date",
				Unique:  true,
				Columns: []*schema.Column{UsageTrackingColumns[1], UsageTrackingColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "timezone", Type: field.TypeString, Default: "UTC"},
		{Name: "onboarded", Type: field.TypeBool, Default: false},
		{Name: "daily_token_budget", Type: field.TypeInt, Default: 0},
		{Name: "daily_thinking_budget", Type: field.TypeInt, Default: 0},
		{Name: "tracked_competitors", Type: field.TypeJSON, Nullable: true},
		{Name: "connected_integrations", Type: field.TypeJSON, Nullable: true},
		{Name: "writing_style", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_onboarded",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[4]},
			},
		},
	}
	// WeeklyDigestsColumns holds the columns for the "weekly_digests" table.
	WeeklyDigestsColumns = []*schema.Column{
		{Name: "digest_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "week_start", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "item_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WeeklyDigestsTable holds the schema information for the "weekly_digests" table.
	WeeklyDigestsTable = &schema.Table{
		Name:       "weekly_digests",
		Columns:    WeeklyDigestsColumns,
		PrimaryKey: []*schema.Column{WeeklyDigestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "weeklydigest_user_id_week_start",
				Unique:  true,
				Columns: []*schema.Column{WeeklyDigestsColumns[1], WeeklyDigestsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BriefingQueueTable,
		CommitmentsTable,
		ConversationsTable,
		GoalsTable,
		LoginMessageQueueTable,
		MarketSignalsTable,
		MeetingDebriefsTable,
		MessagesTable,
		NotificationsTable,
		UsageTrackingTable,
		UsersTable,
		WeeklyDigestsTable,
	}
)

func init() {
	BriefingQueueTable.Annotation = &entsql.Annotation{
		Table: "briefing_queue",
	}
	CommitmentsTable.Annotation = &entsql.Annotation{
		Table: "commitments",
	}
	ConversationsTable.ForeignKeys[0].RefTable = UsersTable
	ConversationsTable.Annotation = &entsql.Annotation{
		Table: "conversations",
	}
	GoalsTable.Annotation = &entsql.Annotation{
		Table: "goals",
	}
	LoginMessageQueueTable.Annotation = &entsql.Annotation{
		Table: "login_message_queue",
	}
	MarketSignalsTable.Annotation = &entsql.Annotation{
		Table: "market_signals",
	}
	MeetingDebriefsTable.Annotation = &entsql.Annotation{
		Table: "meeting_debriefs",
	}
	MessagesTable.ForeignKeys[0].RefTable = ConversationsTable
	MessagesTable.Annotation = &entsql.Annotation{
		Table: "messages",
	}
	NotificationsTable.Annotation = &entsql.Annotation{
		Table: "notifications",
	}
	UsageTrackingTable.Annotation = &entsql.Annotation{
		Table: "usage_tracking",
	}
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
	WeeklyDigestsTable.Annotation = &entsql.Annotation{
		Table: "weekly_digests",
	}
}
