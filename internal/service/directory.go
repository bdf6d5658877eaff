package service

import (
	"context"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/ainatrbl/aina/internal/auth"
	"github.com/ainatrbl/aina/internal/database/repository"
)

// DirectoryService is the read side behind the portal screens: announcement
// filtering, membership-gated room listings, channel and event views, and the
// search boxes.
type DirectoryService struct {
	Announcements *repository.AnnouncementRepo
	Rooms         *repository.RoomRepo
	Channels      *repository.ChannelRepo
	Events        *repository.EventRepo
}

// ListAnnouncements returns announcements for a category filter ("" or "all"
// means everything), pinned entries first.
func (s *DirectoryService) ListAnnouncements(ctx context.Context, category string) ([]repository.Announcement, error) {
	return s.Announcements.List(ctx, category)
}

// AccessibleRooms lists the rooms the member may enter, optionally narrowed
// by a search query. Public rooms are always visible; private rooms require
// the membership named on the row, and admin-only rooms an admin identity.
func (s *DirectoryService) AccessibleRooms(ctx context.Context, who auth.Identity, query string) ([]repository.Room, error) {
	rooms, err := s.Rooms.List(ctx)
	if err != nil {
		return nil, err
	}
	accessible := rooms[:0]
	for _, room := range rooms {
		if !roomAccessible(room, who) {
			continue
		}
		accessible = append(accessible, room)
	}
	if strings.TrimSpace(query) == "" {
		return accessible, nil
	}
	names := make([]string, len(accessible))
	for i, room := range accessible {
		names[i] = room.Name
	}
	idx := searchRank(names, query)
	out := make([]repository.Room, 0, len(idx))
	for _, i := range idx {
		out = append(out, accessible[i])
	}
	return out, nil
}

func roomAccessible(room repository.Room, who auth.Identity) bool {
	if !room.Private {
		return true
	}
	if room.AdminOnly {
		return who.IsAdmin
	}
	if room.RequiredClub != "" && who.InClub(room.RequiredClub) {
		return true
	}
	if room.RequiredEvent != "" && who.InEvent(room.RequiredEvent) {
		return true
	}
	return false
}

// SearchChannels lists channels narrowed by a search query over name and
// description. An empty query returns everything in list order.
func (s *DirectoryService) SearchChannels(ctx context.Context, query string) ([]repository.Channel, error) {
	channels, err := s.Channels.List(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return channels, nil
	}
	keys := make([]string, len(channels))
	for i, ch := range channels {
		keys[i] = ch.Name + " " + ch.Description
	}
	idx := searchRank(keys, query)
	out := make([]repository.Channel, 0, len(idx))
	for _, i := range idx {
		out = append(out, channels[i])
	}
	return out, nil
}

// UpcomingEvents returns events on or after today (YYYY-MM-DD), soonest
// first. today == "" returns everything.
func (s *DirectoryService) UpcomingEvents(ctx context.Context, today string) ([]repository.Event, error) {
	events, err := s.Events.List(ctx)
	if err != nil {
		return nil, err
	}
	if today == "" {
		return events, nil
	}
	out := events[:0]
	for _, e := range events {
		if e.StartsOn >= today {
			out = append(out, e)
		}
	}
	return out, nil
}

// Registered reports whether the member is registered for the event, based on
// the membership the event row names.
func Registered(e repository.Event, who auth.Identity) bool {
	if e.RegisterClub != "" && who.InClub(e.RegisterClub) {
		return true
	}
	if e.RegisterEvent != "" && who.InEvent(e.RegisterEvent) {
		return true
	}
	return false
}

// searchRank returns indices of keys matching the query: substring matches
// first (in original order), then near-misses ranked by normalized edit
// distance so a typo like "badmintn" still finds the badminton room.
func searchRank(keys []string, query string) []int {
	query = strings.ToLower(strings.TrimSpace(query))
	var exact []int
	type fuzzy struct {
		idx   int
		score float64
	}
	var near []fuzzy
	for i, key := range keys {
		lower := strings.ToLower(key)
		if strings.Contains(lower, query) {
			exact = append(exact, i)
			continue
		}
		score := bestWordScore(lower, query)
		if score < 0.4 {
			near = append(near, fuzzy{idx: i, score: score})
		}
	}
	if len(exact) > 0 {
		return exact
	}
	sort.SliceStable(near, func(a, b int) bool { return near[a].score < near[b].score })
	out := make([]int, len(near))
	for i, f := range near {
		out[i] = f.idx
	}
	return out
}

func bestWordScore(key, query string) float64 {
	best := 1.0
	for _, word := range strings.Fields(key) {
		dist := levenshtein.ComputeDistance(word, query)
		maxlen := len(word)
		if len(query) > maxlen {
			maxlen = len(query)
		}
		if maxlen == 0 {
			continue
		}
		if score := float64(dist) / float64(maxlen); score < best {
			best = score
		}
	}
	return best
}
