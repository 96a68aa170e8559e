// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/ariahq/aria/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ariahq/aria/ent/briefingitem"
	"github.com/ariahq/aria/ent/commitment"
	"github.com/ariahq/aria/ent/conversation"
	"github.com/ariahq/aria/ent/goal"
	"github.com/ariahq/aria/ent/loginmessage"
	"github.com/ariahq/aria/ent/marketsignal"
	"github.com/ariahq/aria/ent/meetingdebrief"
	"github.com/ariahq/aria/ent/message"
	"github.com/ariahq/aria/ent/notification"
	"github.com/ariahq/aria/ent/usagerecord"
	"github.com/ariahq/aria/ent/user"
	"github.com/ariahq/aria/ent/weeklydigest"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// BriefingItem is the client for interacting with the BriefingItem builders.
	BriefingItem *BriefingItemClient
	// Commitment is the client for interacting with the Commitment builders.
	Commitment *CommitmentClient
	// Conversation is the client for interacting with the Conversation builders.
	Conversation *ConversationClient
	// Goal is the client for interacting with the Goal builders.
	Goal *GoalClient
	// LoginMessage is the client for interacting with the LoginMessage builders.
	LoginMessage *LoginMessageClient
	// MarketSignal is the client for interacting with the MarketSignal builders.
	MarketSignal *MarketSignalClient
	// MeetingDebrief is the client for interacting with the MeetingDebrief builders.
	MeetingDebrief *MeetingDebriefClient
	// Message is the client for interacting with the Message builders.
	Message *MessageClient
	// Notification is the client for interacting with the Notification builders.
	Notification *NotificationClient
	// UsageRecord is the client for interacting with the UsageRecord builders.
	UsageRecord *UsageRecordClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// WeeklyDigest is the client for interacting with the WeeklyDigest builders.
	WeeklyDigest *WeeklyDigestClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.BriefingItem = NewBriefingItemClient(c.config)
	c.Commitment = NewCommitmentClient(c.config)
	c.Conversation = NewConversationClient(c.config)
	c.Goal = NewGoalClient(c.config)
	c.LoginMessage = NewLoginMessageClient(c.config)
	c.MarketSignal = NewMarketSignalClient(c.config)
	c.MeetingDebrief = NewMeetingDebriefClient(c.config)
	c.Message = NewMessageClient(c.config)
	c.Notification = NewNotificationClient(c.config)
	c.UsageRecord = NewUsageRecordClient(c.config)
	c.User = NewUserClient(c.config)
	c.WeeklyDigest = NewWeeklyDigestClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		BriefingItem:   NewBriefingItemClient(cfg),
		Commitment:     NewCommitmentClient(cfg),
		Conversation:   NewConversationClient(cfg),
		Goal:           NewGoalClient(cfg),
		LoginMessage:   NewLoginMessageClient(cfg),
		MarketSignal:   NewMarketSignalClient(cfg),
		MeetingDebrief: NewMeetingDebriefClient(cfg),
		Message:        NewMessageClient(cfg),
		Notification:   NewNotificationClient(cfg),
		UsageRecord:    NewUsageRecordClient(cfg),
		User:           NewUserClient(cfg),
		WeeklyDigest:   NewWeeklyDigestClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		BriefingItem:   NewBriefingItemClient(cfg),
		Commitment:     NewCommitmentClient(cfg),
		Conversation:   NewConversationClient(cfg),
		Goal:           NewGoalClient(cfg),
		LoginMessage:   NewLoginMessageClient(cfg),
		MarketSignal:   NewMarketSignalClient(cfg),
		MeetingDebrief: NewMeetingDebriefClient(cfg),
		Message:        NewMessageClient(cfg),
		Notification:   NewNotificationClient(cfg),
		UsageRecord:    NewUsageRecordClient(cfg),
		User:           NewUserClient(cfg),
		WeeklyDigest:   NewWeeklyDigestClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		BriefingItem.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.BriefingItem, c.Commitment, c.Conversation, c.Goal, c.LoginMessage,
		c.MarketSignal, c.MeetingDebrief, c.Message, c.Notification, c.UsageRecord,
		c.User, c.WeeklyDigest,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.BriefingItem, c.Commitment, c.Conversation, c.Goal, c.LoginMessage,
		c.MarketSignal, c.MeetingDebrief, c.Message, c.Notification, c.UsageRecord,
		c.User, c.WeeklyDigest,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BriefingItemMutation:
		return c.BriefingItem.mutate(ctx, m)
	case *CommitmentMutation:
		return c.Commitment.mutate(ctx, m)
	case *ConversationMutation:
		return c.Conversation.mutate(ctx, m)
	case *GoalMutation:
		return c.Goal.mutate(ctx, m)
	case *LoginMessageMutation:
		return c.LoginMessage.mutate(ctx, m)
	case *MarketSignalMutation:
		return c.MarketSignal.mutate(ctx, m)
	case *MeetingDebriefMutation:
		return c.MeetingDebrief.mutate(ctx, m)
	case *MessageMutation:
		return c.Message.mutate(ctx, m)
	case *NotificationMutation:
		return c.Notification.mutate(ctx, m)
	case *UsageRecordMutation:
		return c.UsageRecord.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *WeeklyDigestMutation:
		return c.WeeklyDigest.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BriefingItemClient is a client for the BriefingItem schema.
type BriefingItemClient struct {
	config
}

// NewBriefingItemClient returns a client for the BriefingItem from the given config.
func NewBriefingItemClient(c config) *BriefingItemClient {
	return &BriefingItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `briefingitem.Hooks(f(g(h())))`.
func (c *BriefingItemClient) Use(hooks ...Hook) {
	c.hooks.BriefingItem = append(c.hooks.BriefingItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `briefingitem.Intercept(f(g(h())))`.
func (c *BriefingItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.BriefingItem = append(c.inters.BriefingItem, interceptors...)
}

// Create returns a builder for creating a BriefingItem entity.
func (c *BriefingItemClient) Create() *BriefingItemCreate {
	mutation := newBriefingItemMutation(c.config, OpCreate)
	return &BriefingItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BriefingItem entities.
func (c *BriefingItemClient) CreateBulk(builders ...*BriefingItemCreate) *BriefingItemCreateBulk {
	return &BriefingItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BriefingItemClient) MapCreateBulk(slice any, setFunc func(*BriefingItemCreate, int)) *BriefingItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BriefingItemCreateBulk{err: fmt.Errorf("calling to BriefingItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BriefingItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BriefingItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BriefingItem.
func (c *BriefingItemClient) Update() *BriefingItemUpdate {
	mutation := newBriefingItemMutation(c.config, OpUpdate)
	return &BriefingItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BriefingItemClient) UpdateOne(_m *BriefingItem) *BriefingItemUpdateOne {
	mutation := newBriefingItemMutation(c.config, OpUpdateOne, withBriefingItem(_m))
	return &BriefingItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BriefingItemClient) UpdateOneID(id string) *BriefingItemUpdateOne {
	mutation := newBriefingItemMutation(c.config, OpUpdateOne, withBriefingItemID(id))
	return &BriefingItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BriefingItem.
func (c *BriefingItemClient) Delete() *BriefingItemDelete {
	mutation := newBriefingItemMutation(c.config, OpDelete)
	return &BriefingItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BriefingItemClient) DeleteOne(_m *BriefingItem) *BriefingItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BriefingItemClient) DeleteOneID(id string) *BriefingItemDeleteOne {
	builder := c.Delete().Where(briefingitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BriefingItemDeleteOne{builder}
}

// Query returns a query builder for BriefingItem.
func (c *BriefingItemClient) Query() *BriefingItemQuery {
	return &BriefingItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBriefingItem},
		inters: c.Interceptors(),
	}
}

// Get returns a BriefingItem entity by its id.
func (c *BriefingItemClient) Get(ctx context.Context, id string) (*BriefingItem, error) {
	return c.Query().Where(briefingitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BriefingItemClient) GetX(ctx context.Context, id string) *BriefingItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BriefingItemClient) Hooks() []Hook {
	return c.hooks.BriefingItem
}

// Interceptors returns the client interceptors.
func (c *BriefingItemClient) Interceptors() []Interceptor {
	return c.inters.BriefingItem
}

func (c *BriefingItemClient) mutate(ctx context.Context, m *BriefingItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BriefingItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BriefingItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BriefingItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BriefingItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BriefingItem mutation op: %q", m.Op())
	}
}

// CommitmentClient is a client for the Commitment schema.
type CommitmentClient struct {
	config
}

// NewCommitmentClient returns a client for the Commitment from the given config.
func NewCommitmentClient(c config) *CommitmentClient {
	return &CommitmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `commitment.Hooks(f(g(h())))`.
func (c *CommitmentClient) Use(hooks ...Hook) {
	c.hooks.Commitment = append(c.hooks.Commitment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `commitment.Intercept(f(g(h())))`.
func (c *CommitmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Commitment = append(c.inters.Commitment, interceptors...)
}

// Create returns a builder for creating a Commitment entity.
func (c *CommitmentClient) Create() *CommitmentCreate {
	mutation := newCommitmentMutation(c.config, OpCreate)
	return &CommitmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Commitment entities.
func (c *CommitmentClient) CreateBulk(builders ...*CommitmentCreate) *CommitmentCreateBulk {
	return &CommitmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CommitmentClient) MapCreateBulk(slice any, setFunc func(*CommitmentCreate, int)) *CommitmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CommitmentCreateBulk{err: fmt.Errorf("calling to CommitmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CommitmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CommitmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Commitment.
func (c *CommitmentClient) Update() *CommitmentUpdate {
	mutation := newCommitmentMutation(c.config, OpUpdate)
	return &CommitmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CommitmentClient) UpdateOne(_m *Commitment) *CommitmentUpdateOne {
	mutation := newCommitmentMutation(c.config, OpUpdateOne, withCommitment(_m))
	return &CommitmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CommitmentClient) UpdateOneID(id string) *CommitmentUpdateOne {
	mutation := newCommitmentMutation(c.config, OpUpdateOne, withCommitmentID(id))
	return &CommitmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Commitment.
func (c *CommitmentClient) Delete() *CommitmentDelete {
	mutation := newCommitmentMutation(c.config, OpDelete)
	return &CommitmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CommitmentClient) DeleteOne(_m *Commitment) *CommitmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CommitmentClient) DeleteOneID(id string) *CommitmentDeleteOne {
	builder := c.Delete().Where(commitment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CommitmentDeleteOne{builder}
}

// Query returns a query builder for Commitment.
func (c *CommitmentClient) Query() *CommitmentQuery {
	return &CommitmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCommitment},
		inters: c.Interceptors(),
	}
}

// Get returns a Commitment entity by its id.
func (c *CommitmentClient) Get(ctx context.Context, id string) (*Commitment, error) {
	return c.Query().Where(commitment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CommitmentClient) GetX(ctx context.Context, id string) *Commitment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CommitmentClient) Hooks() []Hook {
	return c.hooks.Commitment
}

// Interceptors returns the client interceptors.
func (c *CommitmentClient) Interceptors() []Interceptor {
	return c.inters.Commitment
}

func (c *CommitmentClient) mutate(ctx context.Context, m *CommitmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CommitmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CommitmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CommitmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CommitmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Commitment mutation op: %q", m.Op())
	}
}

// ConversationClient is a client for the Conversation schema.
type ConversationClient struct {
	config
}

// NewConversationClient returns a client for the Conversation from the given config.
func NewConversationClient(c config) *ConversationClient {
	return &ConversationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversation.Hooks(f(g(h())))`.
func (c *ConversationClient) Use(hooks ...Hook) {
	c.hooks.Conversation = append(c.hooks.Conversation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversation.Intercept(f(g(h())))`.
func (c *ConversationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Conversation = append(c.inters.Conversation, interceptors...)
}

// Create returns a builder for creating a Conversation entity.
func (c *ConversationClient) Create() *ConversationCreate {
	mutation := newConversationMutation(c.config, OpCreate)
	return &ConversationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Conversation entities.
func (c *ConversationClient) CreateBulk(builders ...*ConversationCreate) *ConversationCreateBulk {
	return &ConversationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversationClient) MapCreateBulk(slice any, setFunc func(*ConversationCreate, int)) *ConversationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversationCreateBulk{err: fmt.Errorf("calling to ConversationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Conversation.
func (c *ConversationClient) Update() *ConversationUpdate {
	mutation := newConversationMutation(c.config, OpUpdate)
	return &ConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversationClient) UpdateOne(_m *Conversation) *ConversationUpdateOne {
	mutation := newConversationMutation(c.config, OpUpdateOne, withConversation(_m))
	return &ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversationClient) UpdateOneID(id string) *ConversationUpdateOne {
	mutation := newConversationMutation(c.config, OpUpdateOne, withConversationID(id))
	return &ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Conversation.
func (c *ConversationClient) Delete() *ConversationDelete {
	mutation := newConversationMutation(c.config, OpDelete)
	return &ConversationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversationClient) DeleteOne(_m *Conversation) *ConversationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversationClient) DeleteOneID(id string) *ConversationDeleteOne {
	builder := c.Delete().Where(conversation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversationDeleteOne{builder}
}

// Query returns a query builder for Conversation.
func (c *ConversationClient) Query() *ConversationQuery {
	return &ConversationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversation},
		inters: c.Interceptors(),
	}
}

// Get returns a Conversation entity by its id.
func (c *ConversationClient) Get(ctx context.Context, id string) (*Conversation, error) {
	return c.Query().Where(conversation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversationClient) GetX(ctx context.Context, id string) *Conversation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Conversation.
func (c *ConversationClient) QueryUser(_m *Conversation) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversation.Table, conversation.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, conversation.UserTable, conversation.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMessages queries the messages edge of a Conversation.
func (c *ConversationClient) QueryMessages(_m *Conversation) *MessageQuery {
	query := (&MessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversation.Table, conversation.FieldID, id),
			sqlgraph.To(message.Table, message.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, conversation.MessagesTable, conversation.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConversationClient) Hooks() []Hook {
	return c.hooks.Conversation
}

// Interceptors returns the client interceptors.
func (c *ConversationClient) Interceptors() []Interceptor {
	return c.inters.Conversation
}

func (c *ConversationClient) mutate(ctx context.Context, m *ConversationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Conversation mutation op: %q", m.Op())
	}
}

// GoalClient is a client for the Goal schema.
type GoalClient struct {
	config
}

// NewGoalClient returns a client for the Goal from the given config.
func NewGoalClient(c config) *GoalClient {
	return &GoalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `goal.Hooks(f(g(h())))`.
func (c *GoalClient) Use(hooks ...Hook) {
	c.hooks.Goal = append(c.hooks.Goal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `goal.Intercept(f(g(h())))`.
func (c *GoalClient) Intercept(interceptors ...Interceptor) {
	c.inters.Goal = append(c.inters.Goal, interceptors...)
}

// Create returns a builder for creating a Goal entity.
func (c *GoalClient) Create() *GoalCreate {
	mutation := newGoalMutation(c.config, OpCreate)
	return &GoalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Goal entities.
func (c *GoalClient) CreateBulk(builders ...*GoalCreate) *GoalCreateBulk {
	return &GoalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GoalClient) MapCreateBulk(slice any, setFunc func(*GoalCreate, int)) *GoalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GoalCreateBulk{err: fmt.Errorf("calling to GoalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GoalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GoalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Goal.
func (c *GoalClient) Update() *GoalUpdate {
	mutation := newGoalMutation(c.config, OpUpdate)
	return &GoalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GoalClient) UpdateOne(_m *Goal) *GoalUpdateOne {
	mutation := newGoalMutation(c.config, OpUpdateOne, withGoal(_m))
	return &GoalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GoalClient) UpdateOneID(id string) *GoalUpdateOne {
	mutation := newGoalMutation(c.config, OpUpdateOne, withGoalID(id))
	return &GoalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Goal.
func (c *GoalClient) Delete() *GoalDelete {
	mutation := newGoalMutation(c.config, OpDelete)
	return &GoalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GoalClient) DeleteOne(_m *Goal) *GoalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GoalClient) DeleteOneID(id string) *GoalDeleteOne {
	builder := c.Delete().Where(goal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GoalDeleteOne{builder}
}

// Query returns a query builder for Goal.
func (c *GoalClient) Query() *GoalQuery {
	return &GoalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGoal},
		inters: c.Interceptors(),
	}
}

// Get returns a Goal entity by its id.
func (c *GoalClient) Get(ctx context.Context, id string) (*Goal, error) {
	return c.Query().Where(goal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GoalClient) GetX(ctx context.Context, id string) *Goal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GoalClient) Hooks() []Hook {
	return c.hooks.Goal
}

// Interceptors returns the client interceptors.
func (c *GoalClient) Interceptors() []Interceptor {
	return c.inters.Goal
}

func (c *GoalClient) mutate(ctx context.Context, m *GoalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GoalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GoalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GoalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GoalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Goal mutation op: %q", m.Op())
	}
}

// LoginMessageClient is a client for the LoginMessage schema.
type LoginMessageClient struct {
	config
}

// NewLoginMessageClient returns a client for the LoginMessage from the given config.
func NewLoginMessageClient(c config) *LoginMessageClient {
	return &LoginMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `loginmessage.Hooks(f(g(h())))`.
func (c *LoginMessageClient) Use(hooks ...Hook) {
	c.hooks.LoginMessage = append(c.hooks.LoginMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `loginmessage.Intercept(f(g(h())))`.
func (c *LoginMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.LoginMessage = append(c.inters.LoginMessage, interceptors...)
}

// Create returns a builder for creating a LoginMessage entity.
func (c *LoginMessageClient) Create() *LoginMessageCreate {
	mutation := newLoginMessageMutation(c.config, OpCreate)
	return &LoginMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LoginMessage entities.
func (c *LoginMessageClient) CreateBulk(builders ...*LoginMessageCreate) *LoginMessageCreateBulk {
	return &LoginMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LoginMessageClient) MapCreateBulk(slice any, setFunc func(*LoginMessageCreate, int)) *LoginMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LoginMessageCreateBulk{err: fmt.Errorf("calling to LoginMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LoginMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LoginMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LoginMessage.
func (c *LoginMessageClient) Update() *LoginMessageUpdate {
	mutation := newLoginMessageMutation(c.config, OpUpdate)
	return &LoginMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LoginMessageClient) UpdateOne(_m *LoginMessage) *LoginMessageUpdateOne {
	mutation := newLoginMessageMutation(c.config, OpUpdateOne, withLoginMessage(_m))
	return &LoginMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LoginMessageClient) UpdateOneID(id string) *LoginMessageUpdateOne {
	mutation := newLoginMessageMutation(c.config, OpUpdateOne, withLoginMessageID(id))
	return &LoginMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LoginMessage.
func (c *LoginMessageClient) Delete() *LoginMessageDelete {
	mutation := newLoginMessageMutation(c.config, OpDelete)
	return &LoginMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LoginMessageClient) DeleteOne(_m *LoginMessage) *LoginMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LoginMessageClient) DeleteOneID(id string) *LoginMessageDeleteOne {
	builder := c.Delete().Where(loginmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LoginMessageDeleteOne{builder}
}

// Query returns a query builder for LoginMessage.
func (c *LoginMessageClient) Query() *LoginMessageQuery {
	return &LoginMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLoginMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a LoginMessage entity by its id.
func (c *LoginMessageClient) Get(ctx context.Context, id string) (*LoginMessage, error) {
	return c.Query().Where(loginmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LoginMessageClient) GetX(ctx context.Context, id string) *LoginMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LoginMessageClient) Hooks() []Hook {
	return c.hooks.LoginMessage
}

// Interceptors returns the client interceptors.
func (c *LoginMessageClient) Interceptors() []Interceptor {
	return c.inters.LoginMessage
}

func (c *LoginMessageClient) mutate(ctx context.Context, m *LoginMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LoginMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LoginMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LoginMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LoginMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LoginMessage mutation op: %q", m.Op())
	}
}

// MarketSignalClient is a client for the MarketSignal schema.
type MarketSignalClient struct {
	config
}

// NewMarketSignalClient returns a client for the MarketSignal from the given config.
func NewMarketSignalClient(c config) *MarketSignalClient {
	return &MarketSignalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `marketsignal.Hooks(f(g(h())))`.
func (c *MarketSignalClient) Use(hooks ...Hook) {
	c.hooks.MarketSignal = append(c.hooks.MarketSignal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `marketsignal.Intercept(f(g(h())))`.
func (c *MarketSignalClient) Intercept(interceptors ...Interceptor) {
	c.inters.MarketSignal = append(c.inters.MarketSignal, interceptors...)
}

// Create returns a builder for creating a MarketSignal entity.
func (c *MarketSignalClient) Create() *MarketSignalCreate {
	mutation := newMarketSignalMutation(c.config, OpCreate)
	return &MarketSignalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MarketSignal entities.
func (c *MarketSignalClient) CreateBulk(builders ...*MarketSignalCreate) *MarketSignalCreateBulk {
	return &MarketSignalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MarketSignalClient) MapCreateBulk(slice any, setFunc func(*MarketSignalCreate, int)) *MarketSignalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MarketSignalCreateBulk{err: fmt.Errorf("calling to MarketSignalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MarketSignalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MarketSignalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MarketSignal.
func (c *MarketSignalClient) Update() *MarketSignalUpdate {
	mutation := newMarketSignalMutation(c.config, OpUpdate)
	return &MarketSignalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MarketSignalClient) UpdateOne(_m *MarketSignal) *MarketSignalUpdateOne {
	mutation := newMarketSignalMutation(c.config, OpUpdateOne, withMarketSignal(_m))
	return &MarketSignalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MarketSignalClient) UpdateOneID(id string) *MarketSignalUpdateOne {
	mutation := newMarketSignalMutation(c.config, OpUpdateOne, withMarketSignalID(id))
	return &MarketSignalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MarketSignal.
func (c *MarketSignalClient) Delete() *MarketSignalDelete {
	mutation := newMarketSignalMutation(c.config, OpDelete)
	return &MarketSignalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MarketSignalClient) DeleteOne(_m *MarketSignal) *MarketSignalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MarketSignalClient) DeleteOneID(id string) *MarketSignalDeleteOne {
	builder := c.Delete().Where(marketsignal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MarketSignalDeleteOne{builder}
}

// Query returns a query builder for MarketSignal.
func (c *MarketSignalClient) Query() *MarketSignalQuery {
	return &MarketSignalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMarketSignal},
		inters: c.Interceptors(),
	}
}

// Get returns a MarketSignal entity by its id.
func (c *MarketSignalClient) Get(ctx context.Context, id string) (*MarketSignal, error) {
	return c.Query().Where(marketsignal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MarketSignalClient) GetX(ctx context.Context, id string) *MarketSignal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MarketSignalClient) Hooks() []Hook {
	return c.hooks.MarketSignal
}

// Interceptors returns the client interceptors.
func (c *MarketSignalClient) Interceptors() []Interceptor {
	return c.inters.MarketSignal
}

func (c *MarketSignalClient) mutate(ctx context.Context, m *MarketSignalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MarketSignalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MarketSignalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MarketSignalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MarketSignalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MarketSignal mutation op: %q", m.Op())
	}
}

// MeetingDebriefClient is a client for the MeetingDebrief schema.
type MeetingDebriefClient struct {
	config
}

// NewMeetingDebriefClient returns a client for the MeetingDebrief from the given config.
func NewMeetingDebriefClient(c config) *MeetingDebriefClient {
	return &MeetingDebriefClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `meetingdebrief.Hooks(f(g(h())))`.
func (c *MeetingDebriefClient) Use(hooks ...Hook) {
	c.hooks.MeetingDebrief = append(c.hooks.MeetingDebrief, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `meetingdebrief.Intercept(f(g(h())))`.
func (c *MeetingDebriefClient) Intercept(interceptors ...Interceptor) {
	c.inters.MeetingDebrief = append(c.inters.MeetingDebrief, interceptors...)
}

// Create returns a builder for creating a MeetingDebrief entity.
func (c *MeetingDebriefClient) Create() *MeetingDebriefCreate {
	mutation := newMeetingDebriefMutation(c.config, OpCreate)
	return &MeetingDebriefCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MeetingDebrief entities.
func (c *MeetingDebriefClient) CreateBulk(builders ...*MeetingDebriefCreate) *MeetingDebriefCreateBulk {
	return &MeetingDebriefCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MeetingDebriefClient) MapCreateBulk(slice any, setFunc func(*MeetingDebriefCreate, int)) *MeetingDebriefCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MeetingDebriefCreateBulk{err: fmt.Errorf("calling to MeetingDebriefClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MeetingDebriefCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MeetingDebriefCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MeetingDebrief.
func (c *MeetingDebriefClient) Update() *MeetingDebriefUpdate {
	mutation := newMeetingDebriefMutation(c.config, OpUpdate)
	return &MeetingDebriefUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MeetingDebriefClient) UpdateOne(_m *MeetingDebrief) *MeetingDebriefUpdateOne {
	mutation := newMeetingDebriefMutation(c.config, OpUpdateOne, withMeetingDebrief(_m))
	return &MeetingDebriefUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MeetingDebriefClient) UpdateOneID(id string) *MeetingDebriefUpdateOne {
	mutation := newMeetingDebriefMutation(c.config, OpUpdateOne, withMeetingDebriefID(id))
	return &MeetingDebriefUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MeetingDebrief.
func (c *MeetingDebriefClient) Delete() *MeetingDebriefDelete {
	mutation := newMeetingDebriefMutation(c.config, OpDelete)
	return &MeetingDebriefDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MeetingDebriefClient) DeleteOne(_m *MeetingDebrief) *MeetingDebriefDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MeetingDebriefClient) DeleteOneID(id string) *MeetingDebriefDeleteOne {
	builder := c.Delete().Where(meetingdebrief.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MeetingDebriefDeleteOne{builder}
}

// Query returns a query builder for MeetingDebrief.
func (c *MeetingDebriefClient) Query() *MeetingDebriefQuery {
	return &MeetingDebriefQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMeetingDebrief},
		inters: c.Interceptors(),
	}
}

// Get returns a MeetingDebrief entity by its id.
func (c *MeetingDebriefClient) Get(ctx context.Context, id string) (*MeetingDebrief, error) {
	return c.Query().Where(meetingdebrief.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MeetingDebriefClient) GetX(ctx context.Context, id string) *MeetingDebrief {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MeetingDebriefClient) Hooks() []Hook {
	return c.hooks.MeetingDebrief
}

// Interceptors returns the client interceptors.
func (c *MeetingDebriefClient) Interceptors() []Interceptor {
	return c.inters.MeetingDebrief
}

func (c *MeetingDebriefClient) mutate(ctx context.Context, m *MeetingDebriefMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MeetingDebriefCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MeetingDebriefUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MeetingDebriefUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MeetingDebriefDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MeetingDebrief mutation op: %q", m.Op())
	}
}

// MessageClient is a client for the Message schema.
type MessageClient struct {
	config
}

// NewMessageClient returns a client for the Message from the given config.
func NewMessageClient(c config) *MessageClient {
	return &MessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `message.Hooks(f(g(h())))`.
func (c *MessageClient) Use(hooks ...Hook) {
	c.hooks.Message = append(c.hooks.Message, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `message.Intercept(f(g(h())))`.
func (c *MessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Message = append(c.inters.Message, interceptors...)
}

// Create returns a builder for creating a Message entity.
func (c *MessageClient) Create() *MessageCreate {
	mutation := newMessageMutation(c.config, OpCreate)
	return &MessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Message entities.
func (c *MessageClient) CreateBulk(builders ...*MessageCreate) *MessageCreateBulk {
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageClient) MapCreateBulk(slice any, setFunc func(*MessageCreate, int)) *MessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageCreateBulk{err: fmt.Errorf("calling to MessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Message.
func (c *MessageClient) Update() *MessageUpdate {
	mutation := newMessageMutation(c.config, OpUpdate)
	return &MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageClient) UpdateOne(_m *Message) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessage(_m))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageClient) UpdateOneID(id string) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessageID(id))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Message.
func (c *MessageClient) Delete() *MessageDelete {
	mutation := newMessageMutation(c.config, OpDelete)
	return &MessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageClient) DeleteOne(_m *Message) *MessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageClient) DeleteOneID(id string) *MessageDeleteOne {
	builder := c.Delete().Where(message.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageDeleteOne{builder}
}

// Query returns a query builder for Message.
func (c *MessageClient) Query() *MessageQuery {
	return &MessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a Message entity by its id.
func (c *MessageClient) Get(ctx context.Context, id string) (*Message, error) {
	return c.Query().Where(message.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageClient) GetX(ctx context.Context, id string) *Message {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConversation queries the conversation edge of a Message.
func (c *MessageClient) QueryConversation(_m *Message) *ConversationQuery {
	query := (&ConversationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(message.Table, message.FieldID, id),
			sqlgraph.To(conversation.Table, conversation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, message.ConversationTable, message.ConversationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MessageClient) Hooks() []Hook {
	return c.hooks.Message
}

// Interceptors returns the client interceptors.
func (c *MessageClient) Interceptors() []Interceptor {
	return c.inters.Message
}

func (c *MessageClient) mutate(ctx context.Context, m *MessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Message mutation op: %q", m.Op())
	}
}

// NotificationClient is a client for the Notification schema.
type NotificationClient struct {
	config
}

// NewNotificationClient returns a client for the Notification from the given config.
func NewNotificationClient(c config) *NotificationClient {
	return &NotificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notification.Hooks(f(g(h())))`.
func (c *NotificationClient) Use(hooks ...Hook) {
	c.hooks.Notification = append(c.hooks.Notification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notification.Intercept(f(g(h())))`.
func (c *NotificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Notification = append(c.inters.Notification, interceptors...)
}

// Create returns a builder for creating a Notification entity.
func (c *NotificationClient) Create() *NotificationCreate {
	mutation := newNotificationMutation(c.config, OpCreate)
	return &NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Notification entities.
func (c *NotificationClient) CreateBulk(builders ...*NotificationCreate) *NotificationCreateBulk {
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationClient) MapCreateBulk(slice any, setFunc func(*NotificationCreate, int)) *NotificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationCreateBulk{err: fmt.Errorf("calling to NotificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Notification.
func (c *NotificationClient) Update() *NotificationUpdate {
	mutation := newNotificationMutation(c.config, OpUpdate)
	return &NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationClient) UpdateOne(_m *Notification) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotification(_m))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationClient) UpdateOneID(id string) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotificationID(id))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Notification.
func (c *NotificationClient) Delete() *NotificationDelete {
	mutation := newNotificationMutation(c.config, OpDelete)
	return &NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationClient) DeleteOne(_m *Notification) *NotificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationClient) DeleteOneID(id string) *NotificationDeleteOne {
	builder := c.Delete().Where(notification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationDeleteOne{builder}
}

// Query returns a query builder for Notification.
func (c *NotificationClient) Query() *NotificationQuery {
	return &NotificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotification},
		inters: c.Interceptors(),
	}
}

// Get returns a Notification entity by its id.
func (c *NotificationClient) Get(ctx context.Context, id string) (*Notification, error) {
	return c.Query().Where(notification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationClient) GetX(ctx context.Context, id string) *Notification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NotificationClient) Hooks() []Hook {
	return c.hooks.Notification
}

// Interceptors returns the client interceptors.
func (c *NotificationClient) Interceptors() []Interceptor {
	return c.inters.Notification
}

func (c *NotificationClient) mutate(ctx context.Context, m *NotificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Notification mutation op: %q", m.Op())
	}
}

// UsageRecordClient is a client for the UsageRecord schema.
type UsageRecordClient struct {
	config
}

// NewUsageRecordClient returns a client for the UsageRecord from the given config.
func NewUsageRecordClient(c config) *UsageRecordClient {
	return &UsageRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usagerecord.Hooks(f(g(h())))`.
func (c *UsageRecordClient) Use(hooks ...Hook) {
	c.hooks.UsageRecord = append(c.hooks.UsageRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usagerecord.Intercept(f(g(h())))`.
func (c *UsageRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.UsageRecord = append(c.inters.UsageRecord, interceptors...)
}

// Create returns a builder for creating a UsageRecord entity.
func (c *UsageRecordClient) Create() *UsageRecordCreate {
	mutation := newUsageRecordMutation(c.config, OpCreate)
	return &UsageRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UsageRecord entities.
func (c *UsageRecordClient) CreateBulk(builders ...*UsageRecordCreate) *UsageRecordCreateBulk {
	return &UsageRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UsageRecordClient) MapCreateBulk(slice any, setFunc func(*UsageRecordCreate, int)) *UsageRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UsageRecordCreateBulk{err: fmt.Errorf("calling to UsageRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UsageRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UsageRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UsageRecord.
func (c *UsageRecordClient) Update() *UsageRecordUpdate {
	mutation := newUsageRecordMutation(c.config, OpUpdate)
	return &UsageRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UsageRecordClient) UpdateOne(_m *UsageRecord) *UsageRecordUpdateOne {
	mutation := newUsageRecordMutation(c.config, OpUpdateOne, withUsageRecord(_m))
	return &UsageRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UsageRecordClient) UpdateOneID(id int) *UsageRecordUpdateOne {
	mutation := newUsageRecordMutation(c.config, OpUpdateOne, withUsageRecordID(id))
	return &UsageRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UsageRecord.
func (c *UsageRecordClient) Delete() *UsageRecordDelete {
	mutation := newUsageRecordMutation(c.config, OpDelete)
	return &UsageRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UsageRecordClient) DeleteOne(_m *UsageRecord) *UsageRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UsageRecordClient) DeleteOneID(id int) *UsageRecordDeleteOne {
	builder := c.Delete().Where(usagerecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UsageRecordDeleteOne{builder}
}

// Query returns a query builder for UsageRecord.
func (c *UsageRecordClient) Query() *UsageRecordQuery {
	return &UsageRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUsageRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a UsageRecord entity by its id.
func (c *UsageRecordClient) Get(ctx context.Context, id int) (*UsageRecord, error) {
	return c.Query().Where(usagerecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UsageRecordClient) GetX(ctx context.Context, id int) *UsageRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UsageRecordClient) Hooks() []Hook {
	return c.hooks.UsageRecord
}

// Interceptors returns the client interceptors.
func (c *UsageRecordClient) Interceptors() []Interceptor {
	return c.inters.UsageRecord
}

func (c *UsageRecordClient) mutate(ctx context.Context, m *UsageRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UsageRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UsageRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UsageRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UsageRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UsageRecord mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id string) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id string) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id string) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id string) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConversations queries the conversations edge of a User.
func (c *UserClient) QueryConversations(_m *User) *ConversationQuery {
	query := (&ConversationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(conversation.Table, conversation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.ConversationsTable, user.ConversationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// WeeklyDigestClient is a client for the WeeklyDigest schema.
type WeeklyDigestClient struct {
	config
}

// NewWeeklyDigestClient returns a client for the WeeklyDigest from the given config.
func NewWeeklyDigestClient(c config) *WeeklyDigestClient {
	return &WeeklyDigestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `weeklydigest.Hooks(f(g(h())))`.
func (c *WeeklyDigestClient) Use(hooks ...Hook) {
	c.hooks.WeeklyDigest = append(c.hooks.WeeklyDigest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `weeklydigest.Intercept(f(g(h())))`.
func (c *WeeklyDigestClient) Intercept(interceptors ...Interceptor) {
	c.inters.WeeklyDigest = append(c.inters.WeeklyDigest, interceptors...)
}

// Create returns a builder for creating a WeeklyDigest entity.
func (c *WeeklyDigestClient) Create() *WeeklyDigestCreate {
	mutation := newWeeklyDigestMutation(c.config, OpCreate)
	return &WeeklyDigestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WeeklyDigest entities.
func (c *WeeklyDigestClient) CreateBulk(builders ...*WeeklyDigestCreate) *WeeklyDigestCreateBulk {
	return &WeeklyDigestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WeeklyDigestClient) MapCreateBulk(slice any, setFunc func(*WeeklyDigestCreate, int)) *WeeklyDigestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WeeklyDigestCreateBulk{err: fmt.Errorf("calling to WeeklyDigestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WeeklyDigestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WeeklyDigestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WeeklyDigest.
func (c *WeeklyDigestClient) Update() *WeeklyDigestUpdate {
	mutation := newWeeklyDigestMutation(c.config, OpUpdate)
	return &WeeklyDigestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WeeklyDigestClient) UpdateOne(_m *WeeklyDigest) *WeeklyDigestUpdateOne {
	mutation := newWeeklyDigestMutation(c.config, OpUpdateOne, withWeeklyDigest(_m))
	return &WeeklyDigestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WeeklyDigestClient) UpdateOneID(id string) *WeeklyDigestUpdateOne {
	mutation := newWeeklyDigestMutation(c.config, OpUpdateOne, withWeeklyDigestID(id))
	return &WeeklyDigestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WeeklyDigest.
func (c *WeeklyDigestClient) Delete() *WeeklyDigestDelete {
	mutation := newWeeklyDigestMutation(c.config, OpDelete)
	return &WeeklyDigestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WeeklyDigestClient) DeleteOne(_m *WeeklyDigest) *WeeklyDigestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WeeklyDigestClient) DeleteOneID(id string) *WeeklyDigestDeleteOne {
	builder := c.Delete().Where(weeklydigest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WeeklyDigestDeleteOne{builder}
}

// Query returns a query builder for WeeklyDigest.
func (c *WeeklyDigestClient) Query() *WeeklyDigestQuery {
	return &WeeklyDigestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWeeklyDigest},
		inters: c.Interceptors(),
	}
}

// Get returns a WeeklyDigest entity by its id.
func (c *WeeklyDigestClient) Get(ctx context.Context, id string) (*WeeklyDigest, error) {
	return c.Query().Where(weeklydigest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WeeklyDigestClient) GetX(ctx context.Context, id string) *WeeklyDigest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WeeklyDigestClient) Hooks() []Hook {
	return c.hooks.WeeklyDigest
}

// Interceptors returns the client interceptors.
func (c *WeeklyDigestClient) Interceptors() []Interceptor {
	return c.inters.WeeklyDigest
}

func (c *WeeklyDigestClient) mutate(ctx context.Context, m *WeeklyDigestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WeeklyDigestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WeeklyDigestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WeeklyDigestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WeeklyDigestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WeeklyDigest mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		BriefingItem, Commitment, Conversation, Goal, LoginMessage, MarketSignal,
		MeetingDebrief, Message, Notification, UsageRecord, User,
		WeeklyDigest []ent.Hook
	}
	inters struct {
		BriefingItem, Commitment, Conversation, Goal, LoginMessage, MarketSignal,
		MeetingDebrief, Message, Notification, UsageRecord, User,
		WeeklyDigest []ent.Interceptor
	}
)
