package api

// Platform-specific options, one struct per destination. Field names map to
// the vendor's wire fields, reproduced verbatim, including the YouTube
// camelCase fields (categoryId, privacyStatus, selfDeclaredMadeForKids, ...)
// that sit next to snake_case everywhere else. That inconsistency is the
// vendor's wire contract, not ours to fix.
//
// Pointer booleans and ints distinguish "not supplied" from an explicit
// false/zero; supplied booleans encode as the literal strings "true"/"false".
//
// Every option, including the per-platform title/description/first-comment
// overrides, lives on its platform's struct so that options for a platform
// outside the request's target set never reach the payload.

// CommonOptions carries the fields shared by every upload variant.
type CommonOptions struct {
	Description     string
	FirstComment    string
	AltText         string
	ScheduledDate   string // ISO 8601, e.g. "2026-12-25T10:00:00Z"
	Timezone        string // IANA name, e.g. "Europe/Madrid"
	AddToQueue      *bool
	MaxPostsPerSlot *int
	AsyncUpload     *bool
}

func (o CommonOptions) apply(f *Form) {
	f.Set("first_comment", o.FirstComment)
	f.Set("alt_text", o.AltText)
	f.Set("scheduled_date", o.ScheduledDate)
	f.Set("timezone", o.Timezone)
	f.SetBool("add_to_queue", o.AddToQueue)
	f.SetInt("max_posts_per_slot", o.MaxPostsPerSlot)
	f.SetBool("async_upload", o.AsyncUpload)
	f.Set("description", o.Description)
}

// TikTokOptions maps to the vendor's TikTok fields.
type TikTokOptions struct {
	Title       string // tiktok_title override
	Description string // tiktok_description override

	PrivacyLevel       string // PUBLIC_TO_EVERYONE, MUTUAL_FOLLOW_FRIENDS, FOLLOWER_OF_CREATOR, SELF_ONLY
	DisableComment     *bool
	DisableDuet        *bool // video only
	DisableStitch      *bool // video only
	CoverTimestamp     *int  // video only, milliseconds
	IsAIGC             *bool // video only
	PostMode           string // video only: DIRECT_POST or MEDIA_UPLOAD
	BrandContentToggle *bool
	BrandOrganicToggle *bool

	AutoAddMusic    *bool // photos only
	PhotoCoverIndex *int  // photos only, 0-based
}

func (o *TikTokOptions) apply(f *Form, kind uploadKind) {
	if o == nil {
		return
	}
	f.Set("tiktok_title", o.Title)
	f.Set("tiktok_description", o.Description)
	f.SetBool("disable_comment", o.DisableComment)
	f.SetBool("brand_content_toggle", o.BrandContentToggle)
	f.SetBool("brand_organic_toggle", o.BrandOrganicToggle)

	switch kind {
	case kindVideo:
		f.Set("privacy_level", o.PrivacyLevel)
		f.SetBool("disable_duet", o.DisableDuet)
		f.SetBool("disable_stitch", o.DisableStitch)
		f.SetInt("cover_timestamp", o.CoverTimestamp)
		f.SetBool("is_aigc", o.IsAIGC)
		f.Set("post_mode", o.PostMode)
	case kindPhotos:
		f.SetBool("auto_add_music", o.AutoAddMusic)
		f.SetInt("photo_cover_index", o.PhotoCoverIndex)
	}
}

// InstagramOptions maps to the vendor's Instagram fields.
type InstagramOptions struct {
	Title        string // instagram_title override
	FirstComment string // instagram_first_comment override

	MediaType     string   // video: REELS or STORIES; photos: IMAGE or STORIES
	Collaborators []string // usernames, joined comma-separated
	UserTags      []string // joined comma-separated
	LocationID    string

	ShareToFeed *bool  // video only
	CoverURL    string // video only
	AudioName   string // video only
	ThumbOffset string // video only
}

func (o *InstagramOptions) apply(f *Form, kind uploadKind) {
	if o == nil {
		return
	}
	f.Set("instagram_title", o.Title)
	f.Set("instagram_first_comment", o.FirstComment)
	f.Set("media_type", o.MediaType)
	f.SetCSV("collaborators", o.Collaborators)
	f.SetCSV("user_tags", o.UserTags)
	f.Set("location_id", o.LocationID)

	if kind == kindVideo {
		f.SetBool("share_to_feed", o.ShareToFeed)
		f.Set("cover_url", o.CoverURL)
		f.Set("audio_name", o.AudioName)
		f.Set("thumb_offset", o.ThumbOffset)
	}
}

// YouTubeOptions maps to the vendor's YouTube fields. The camelCase wire
// names are intentional.
type YouTubeOptions struct {
	Title        string // youtube_title override
	Description  string // youtube_description override
	FirstComment string // youtube_first_comment override

	Tags                    []string // repeated tags[] fields
	CategoryID              string   // categoryId, default "22" server-side
	PrivacyStatus           string   // privacyStatus: public, unlisted, private
	Embeddable              *bool
	License                 string // youtube or creativeCommon
	PublicStatsViewable     *bool
	ThumbnailURL            string // thumbnail_url
	SelfDeclaredMadeForKids *bool
	ContainsSyntheticMedia  *bool
	DefaultLanguage         string   // BCP-47
	DefaultAudioLanguage    string   // BCP-47
	AllowedCountries        []string // joined comma-separated
	BlockedCountries        []string // joined comma-separated
	HasPaidProductPlacement *bool
	RecordingDate           string // ISO 8601
}

func (o *YouTubeOptions) apply(f *Form) {
	if o == nil {
		return
	}
	f.Set("youtube_title", o.Title)
	f.Set("youtube_description", o.Description)
	f.Set("youtube_first_comment", o.FirstComment)
	f.SetList("tags[]", o.Tags)
	f.Set("categoryId", o.CategoryID)
	f.Set("privacyStatus", o.PrivacyStatus)
	f.SetBool("embeddable", o.Embeddable)
	f.Set("license", o.License)
	f.SetBool("publicStatsViewable", o.PublicStatsViewable)
	f.Set("thumbnail_url", o.ThumbnailURL)
	f.SetBool("selfDeclaredMadeForKids", o.SelfDeclaredMadeForKids)
	f.SetBool("containsSyntheticMedia", o.ContainsSyntheticMedia)
	f.Set("defaultLanguage", o.DefaultLanguage)
	f.Set("defaultAudioLanguage", o.DefaultAudioLanguage)
	f.SetCSV("allowedCountries", o.AllowedCountries)
	f.SetCSV("blockedCountries", o.BlockedCountries)
	f.SetBool("hasPaidProductPlacement", o.HasPaidProductPlacement)
	f.Set("recordingDate", o.RecordingDate)
}

// LinkedInOptions maps to the vendor's LinkedIn fields.
type LinkedInOptions struct {
	Title       string // linkedin_title override
	Description string // linkedin_description override

	Visibility   string // PUBLIC, CONNECTIONS, LOGGED_IN, CONTAINER
	TargetPageID string // target_linkedin_page_id, for organization posts
	LinkURL      string // linkedin_link_url, text posts only
}

func (o *LinkedInOptions) apply(f *Form, kind uploadKind) {
	if o == nil {
		return
	}
	f.Set("linkedin_title", o.Title)
	f.Set("linkedin_description", o.Description)
	f.Set("visibility", o.Visibility)
	f.Set("target_linkedin_page_id", o.TargetPageID)
	if kind == kindText {
		f.Set("linkedin_link_url", o.LinkURL)
	}
}

// FacebookOptions maps to the vendor's Facebook fields.
type FacebookOptions struct {
	Title        string // facebook_title override
	Description  string // facebook_description override
	FirstComment string // facebook_first_comment override

	PageID       string // facebook_page_id
	VideoState   string // video only: PUBLISHED or DRAFT
	MediaType    string // video only: facebook_media_type REELS, STORIES, or VIDEO
	ThumbnailURL string // video only, VIDEO type
	LinkURL      string // facebook_link_url, text posts only
}

func (o *FacebookOptions) apply(f *Form, kind uploadKind) {
	if o == nil {
		return
	}
	f.Set("facebook_title", o.Title)
	f.Set("facebook_description", o.Description)
	f.Set("facebook_first_comment", o.FirstComment)
	f.Set("facebook_page_id", o.PageID)

	switch kind {
	case kindVideo:
		f.Set("video_state", o.VideoState)
		f.Set("facebook_media_type", o.MediaType)
		f.Set("thumbnail_url", o.ThumbnailURL)
	case kindText:
		f.Set("facebook_link_url", o.LinkURL)
	}
}

// PinterestOptions maps to the vendor's Pinterest fields.
type PinterestOptions struct {
	Title       string // pinterest_title override
	Description string // pinterest_description override

	BoardID string // pinterest_board_id
	AltText string // pinterest_alt_text
	Link    string // pinterest_link, destination link

	CoverImageURL          string // video only
	CoverImageContentType  string // video only
	CoverImageData         string // video only, base64
	CoverImageKeyFrameTime *int   // video only, milliseconds
}

func (o *PinterestOptions) apply(f *Form, kind uploadKind) {
	if o == nil {
		return
	}
	f.Set("pinterest_title", o.Title)
	f.Set("pinterest_description", o.Description)
	f.Set("pinterest_board_id", o.BoardID)
	f.Set("pinterest_alt_text", o.AltText)
	f.Set("pinterest_link", o.Link)

	if kind == kindVideo {
		f.Set("pinterest_cover_image_url", o.CoverImageURL)
		f.Set("pinterest_cover_image_content_type", o.CoverImageContentType)
		f.Set("pinterest_cover_image_data", o.CoverImageData)
		f.SetInt("pinterest_cover_image_key_frame_time", o.CoverImageKeyFrameTime)
	}
}

// XOptions maps to the vendor's X (Twitter) fields.
type XOptions struct {
	Title        string // x_title override
	FirstComment string // x_first_comment override

	ReplySettings         string // everyone, following, mentionedUsers, subscribers, verified
	Nullcast              *bool
	QuoteTweetID          string
	GeoPlaceID            string
	ForSuperFollowersOnly *bool
	CommunityID           string
	ShareWithFollowers    *bool
	DirectMessageDeepLink string
	LongTextAsPost        *bool // x_long_text_as_post

	TaggedUserIDs     []string // media posts only, repeated tagged_user_ids[]
	PlaceID           string   // media posts only
	ThreadImageLayout string   // media posts only, e.g. "4,4" or "2,3,1"

	PostURL           string   // text posts only
	CardURI           string   // text posts only
	PollOptions       []string // text posts only, 2-4 repeated poll_options[]
	PollDuration      *int     // text posts only, minutes (5-10080)
	PollReplySettings string   // text posts only
}

func (o *XOptions) apply(f *Form, kind uploadKind) {
	if o == nil {
		return
	}
	f.Set("x_title", o.Title)
	f.Set("x_first_comment", o.FirstComment)
	// "everyone" is the server default and is omitted from the wire.
	if o.ReplySettings != "" && o.ReplySettings != "everyone" {
		f.Add("reply_settings", o.ReplySettings)
	}
	f.SetBool("nullcast", o.Nullcast)
	f.Set("quote_tweet_id", o.QuoteTweetID)
	f.Set("geo_place_id", o.GeoPlaceID)
	f.SetBool("for_super_followers_only", o.ForSuperFollowersOnly)
	f.Set("community_id", o.CommunityID)
	f.SetBool("share_with_followers", o.ShareWithFollowers)
	f.Set("direct_message_deep_link", o.DirectMessageDeepLink)
	f.SetBool("x_long_text_as_post", o.LongTextAsPost)

	if kind == kindText {
		f.Set("post_url", o.PostURL)
		f.Set("card_uri", o.CardURI)
		if len(o.PollOptions) > 0 {
			f.SetList("poll_options[]", o.PollOptions)
			f.SetInt("poll_duration", o.PollDuration)
			f.Set("poll_reply_settings", o.PollReplySettings)
		}
	} else {
		f.SetList("tagged_user_ids[]", o.TaggedUserIDs)
		f.Set("place_id", o.PlaceID)
		f.Set("x_thread_image_layout", o.ThreadImageLayout)
	}
}

// ThreadsOptions maps to the vendor's Threads fields.
type ThreadsOptions struct {
	Title        string // threads_title override
	FirstComment string // threads_first_comment override

	LongTextAsPost    *bool  // threads_long_text_as_post
	ThreadMediaLayout string // threads_thread_media_layout, e.g. "5,5" or "3,4,3"
}

func (o *ThreadsOptions) apply(f *Form) {
	if o == nil {
		return
	}
	f.Set("threads_title", o.Title)
	f.Set("threads_first_comment", o.FirstComment)
	f.SetBool("threads_long_text_as_post", o.LongTextAsPost)
	f.Set("threads_thread_media_layout", o.ThreadMediaLayout)
}

// RedditOptions maps to the vendor's Reddit fields.
type RedditOptions struct {
	FirstComment string // reddit_first_comment override

	Subreddit string // without the r/ prefix
	FlairID   string
	LinkURL   string // reddit_link_url, text posts only; creates a link post
}

func (o *RedditOptions) apply(f *Form, kind uploadKind) {
	if o == nil {
		return
	}
	f.Set("reddit_first_comment", o.FirstComment)
	f.Set("subreddit", o.Subreddit)
	f.Set("flair_id", o.FlairID)
	if kind == kindText {
		f.Set("reddit_link_url", o.LinkURL)
	}
}

// BlueskyOptions maps to the vendor's Bluesky fields.
type BlueskyOptions struct {
	Title        string // bluesky_title override
	FirstComment string // bluesky_first_comment override
	LinkURL      string // bluesky_link_url, text posts only; external embed
}

func (o *BlueskyOptions) apply(f *Form, kind uploadKind) {
	if o == nil {
		return
	}
	f.Set("bluesky_title", o.Title)
	f.Set("bluesky_first_comment", o.FirstComment)
	if kind == kindText {
		f.Set("bluesky_link_url", o.LinkURL)
	}
}

// PlatformOptions bundles the per-platform option structs for one upload.
// Only the entries whose platform appears in the request's target set are
// applied; the rest are dropped so one platform's settings can never leak
// into another platform's processing.
type PlatformOptions struct {
	TikTok    *TikTokOptions
	Instagram *InstagramOptions
	YouTube   *YouTubeOptions
	LinkedIn  *LinkedInOptions
	Facebook  *FacebookOptions
	Pinterest *PinterestOptions
	X         *XOptions
	Threads   *ThreadsOptions
	Reddit    *RedditOptions
	Bluesky   *BlueskyOptions
}

func (o PlatformOptions) apply(f *Form, kind uploadKind, platforms []Platform) {
	if containsPlatform(platforms, TikTok) {
		o.TikTok.apply(f, kind)
	}
	if containsPlatform(platforms, Instagram) {
		o.Instagram.apply(f, kind)
	}
	if containsPlatform(platforms, YouTube) {
		o.YouTube.apply(f)
	}
	if containsPlatform(platforms, LinkedIn) {
		o.LinkedIn.apply(f, kind)
	}
	if containsPlatform(platforms, Facebook) {
		o.Facebook.apply(f, kind)
	}
	if containsPlatform(platforms, Pinterest) {
		o.Pinterest.apply(f, kind)
	}
	if containsPlatform(platforms, X) {
		o.X.apply(f, kind)
	}
	if containsPlatform(platforms, Threads) {
		o.Threads.apply(f)
	}
	if containsPlatform(platforms, Reddit) {
		o.Reddit.apply(f, kind)
	}
	if containsPlatform(platforms, Bluesky) {
		o.Bluesky.apply(f, kind)
	}
}
