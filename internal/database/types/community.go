package types

import (
	"errors"
	"time"
)

var ErrCommunityNotFound = errors.New("community not found")

// Community represents a monitored chat server.
// RoleTagID is the attention role used to detect mentions; NotifyChannelID
// overrides where escalation notifications are delivered.
type Community struct {
	ID              uint64    `bun:",pk,autoincrement"     json:"id"`
	ServerID        uint64    `bun:",notnull,unique"       json:"serverId"`
	Name            string    `bun:",notnull"              json:"name"`
	RoleTagID       uint64    `bun:",nullzero"             json:"roleTagId"`
	NotifyChannelID uint64    `bun:",nullzero"             json:"notifyChannelId"`
	IsActive        bool      `bun:",notnull,default:true" json:"isActive"`
	CreatedAt       time.Time `bun:",notnull"              json:"createdAt"`
}
