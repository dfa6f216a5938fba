package api

import (
	"context"
	"net/url"
)

// Platform resource lookups used to fill page and board IDs in upload
// options. All three take an optional profile username; without it the
// vendor resolves the account's default profile.

func profileQuery(profile string) url.Values {
	if profile == "" {
		return nil
	}
	return url.Values{"profile": {profile}}
}

// Facebook lists the Facebook pages connected to a profile.
func (s PagesService) Facebook(ctx context.Context, profile string) (Result, error) {
	var result Result
	if err := s.get(ctx, "/uploadposts/facebook/pages", profileQuery(profile), &result); err != nil {
		return nil, err
	}
	return result, nil
}

// LinkedIn lists the LinkedIn organization pages connected to a profile.
func (s PagesService) LinkedIn(ctx context.Context, profile string) (Result, error) {
	var result Result
	if err := s.get(ctx, "/uploadposts/linkedin/pages", profileQuery(profile), &result); err != nil {
		return nil, err
	}
	return result, nil
}

// PinterestBoards lists the Pinterest boards connected to a profile.
func (s PagesService) PinterestBoards(ctx context.Context, profile string) (Result, error) {
	var result Result
	if err := s.get(ctx, "/uploadposts/pinterest/boards", profileQuery(profile), &result); err != nil {
		return nil, err
	}
	return result, nil
}
