package snapshot

import (
	"encoding/json"
	"fmt"
	"strconv"

	"miniblog/internal/model"
)

// snapshotFile is the on-disk layout: both collections keyed by the
// stringified entity id.
type snapshotFile struct {
	Users map[string]model.User `json:"users"`
	Posts map[string]model.Post `json:"posts"`
}

func encode(users map[int64]model.User, posts map[int64]model.Post) ([]byte, error) {
	f := snapshotFile{
		Users: make(map[string]model.User, len(users)),
		Posts: make(map[string]model.Post, len(posts)),
	}
	for id, u := range users {
		f.Users[strconv.FormatInt(id, 10)] = u
	}
	for id, p := range posts {
		f.Posts[strconv.FormatInt(id, 10)] = p
	}
	return json.MarshalIndent(f, "", "  ")
}

func decode(data []byte) (map[int64]model.User, map[int64]model.Post, error) {
	var f snapshotFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, nil, err
	}

	users := make(map[int64]model.User, len(f.Users))
	for key, u := range f.Users {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("user key %q: %w", key, err)
		}
		users[id] = u
	}

	posts := make(map[int64]model.Post, len(f.Posts))
	for key, p := range f.Posts {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("post key %q: %w", key, err)
		}
		posts[id] = p
	}

	return users, posts, nil
}
