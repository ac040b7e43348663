package services

import (
	"sync"

	"github.com/Uviii9p/Health-Hub/models"
	"github.com/Uviii9p/Health-Hub/storage"
)

const remindersKey = "reminders"

// ReminderService owns the reminder collection. Input is validated at the
// boundary; the service assumes well-formed reminders and applies
// mutations unconditionally.
type ReminderService struct {
	mu    sync.Mutex
	store *storage.Store
	now   Clock
	hub   *EventHub
}

func NewReminderService(store *storage.Store, now Clock, hub *EventHub) *ReminderService {
	return &ReminderService{store: store, now: now, hub: hub}
}

func (s *ReminderService) load() []models.Reminder {
	var list []models.Reminder
	s.store.Load(remindersKey, &list)
	return list
}

func (s *ReminderService) All() []models.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Add assigns the id (creation time in unix millis) and createdAt, forces
// the new reminder active, and appends it.
func (s *ReminderService) Add(r models.Reminder) models.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	r.ID = now.UnixMilli()
	r.CreatedAt = now
	r.Completed = false
	if r.Type == "" {
		r.Type = models.ReminderCustom
	}
	if r.Repeat == "" {
		r.Repeat = models.RepeatNone
	}

	list := append(s.load(), r)
	s.store.Save(remindersKey, list)
	s.hub.Publish("reminder.added", r)
	return r
}

// Update applies a field patch. Returns false when no reminder has the id.
func (s *ReminderService) Update(id int64, patch models.ReminderPatch) (models.Reminder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.load()
	for i := range list {
		if list[i].ID != id {
			continue
		}
		applyPatch(&list[i], patch)
		s.store.Save(remindersKey, list)
		s.hub.Publish("reminder.updated", list[i])
		return list[i], true
	}
	return models.Reminder{}, false
}

func applyPatch(r *models.Reminder, p models.ReminderPatch) {
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Time != nil {
		r.Time = *p.Time
	}
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.Repeat != nil {
		r.Repeat = *p.Repeat
	}
	if p.Completed != nil {
		r.Completed = *p.Completed
	}
}

// ToggleComplete flips a reminder between active and completed.
func (s *ReminderService) ToggleComplete(id int64) (models.Reminder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.load()
	for i := range list {
		if list[i].ID != id {
			continue
		}
		list[i].Completed = !list[i].Completed
		s.store.Save(remindersKey, list)
		s.hub.Publish("reminder.toggled", list[i])
		return list[i], true
	}
	return models.Reminder{}, false
}

// Delete removes a reminder from any state.
func (s *ReminderService) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.load()
	for i := range list {
		if list[i].ID == id {
			list = append(list[:i], list[i+1:]...)
			s.store.Save(remindersKey, list)
			s.hub.Publish("reminder.deleted", id)
			return true
		}
	}
	return false
}
