package auth

import (
	"sync"
	"time"
)

// Directory defines the interface for the user and group store behind the
// auth service. The demo build runs on an in-memory directory; a real
// identity backend would slot in here.
type Directory interface {
	FindUserByID(id string) (User, bool)
	FindUserByEmail(email string) (User, bool)
	InsertUser(user User)
	UpdateUser(user User)

	FindGroupByID(id string) (Group, bool)
	FindGroupsByIDs(ids []string) []Group
	InsertGroup(group Group)
	UpdateGroup(group Group)
	RemoveGroup(id string)
}

// MemoryDirectory is an in-memory directory seeded with demo data.
type MemoryDirectory struct {
	mu     sync.Mutex
	users  map[string]User
	groups map[string]Group
}

// NewMemoryDirectory returns a directory seeded with the demo accounts and
// the demo team.
func NewMemoryDirectory() *MemoryDirectory {
	users := []User{
		{
			ID:         "user-1",
			Email:      "dr.smith@hospital.com",
			Name:       "Dr. Smith",
			Role:       "Consultant",
			Department: "Cardiology",
			GroupIDs:   []string{"group-1"},
		},
		{
			ID:         "user-2",
			Email:      "dr.jones@hospital.com",
			Name:       "Dr. Jones",
			Role:       "Registrar",
			Department: "Cardiology",
			GroupIDs:   []string{"group-1"},
		},
	}

	d := &MemoryDirectory{
		users:  make(map[string]User),
		groups: make(map[string]Group),
	}
	for _, u := range users {
		d.users[u.ID] = u
	}
	d.groups["group-1"] = Group{
		ID:         "group-1",
		Name:       "Cardiology Team 1",
		Passcode:   "123456",
		Department: "Cardiology",
		CreatedBy:  "user-1",
		Members:    users,
		CreatedAt:  time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC),
	}
	return d
}

func (d *MemoryDirectory) FindUserByID(id string) (User, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	user, ok := d.users[id]
	return user, ok
}

func (d *MemoryDirectory) FindUserByEmail(email string) (User, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, user := range d.users {
		if user.Email == email {
			return user, true
		}
	}
	return User{}, false
}

func (d *MemoryDirectory) InsertUser(user User) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users[user.ID] = user
}

func (d *MemoryDirectory) UpdateUser(user User) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users[user.ID] = user
}

func (d *MemoryDirectory) FindGroupByID(id string) (Group, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	group, ok := d.groups[id]
	return group, ok
}

// FindGroupsByIDs returns the groups for the given ids, skipping unknown ids.
func (d *MemoryDirectory) FindGroupsByIDs(ids []string) []Group {
	d.mu.Lock()
	defer d.mu.Unlock()

	var groups []Group
	for _, id := range ids {
		if group, ok := d.groups[id]; ok {
			groups = append(groups, group)
		}
	}
	return groups
}

func (d *MemoryDirectory) InsertGroup(group Group) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.groups[group.ID] = group
}

func (d *MemoryDirectory) UpdateGroup(group Group) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.groups[group.ID] = group
}

func (d *MemoryDirectory) RemoveGroup(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.groups, id)
}
