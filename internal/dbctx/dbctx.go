package dbctx

import (
	"context"

	"gorm.io/gorm"
)

// Context bundles a request context with an optional GORM session. When Tx
// is set, repositories run against it instead of their base handle.
type Context struct {
	Ctx context.Context
	Tx  *gorm.DB
}

// New returns a Context bound to ctx with no session override
func New(ctx context.Context) Context {
	return Context{Ctx: ctx}
}

// Resolve returns the handle to run a statement on, scoped to Ctx
func (c Context) Resolve(base *gorm.DB) *gorm.DB {
	db := base
	if c.Tx != nil {
		db = c.Tx
	}
	ctx := c.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return db.WithContext(ctx)
}
