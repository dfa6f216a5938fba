package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/upload-post/uploadpost-cli/internal/api"
)

// newUploadCmd returns the upload command with one subcommand per content
// kind.
func newUploadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "upload",
		Aliases: []string{"up"},
		Short:   "Publish content across platforms",
		Long:    "Publish a video, photo set, text post, or document to multiple platforms in one request.",
	}

	cmd.AddCommand(newUploadVideoCmd())
	cmd.AddCommand(newUploadPhotosCmd())
	cmd.AddCommand(newUploadTextCmd())
	cmd.AddCommand(newUploadDocumentCmd())

	return cmd
}

// targetFlags holds the identity flags shared by every upload subcommand.
type targetFlags struct {
	User      string
	Title     string
	Platforms []string
}

func addTargetFlags(cmd *cobra.Command, v *targetFlags, withPlatform bool) {
	cmd.Flags().StringVarP(&v.User, "user", "u", "", "Profile username to publish as (required)")
	cmd.Flags().StringVarP(&v.Title, "title", "t", "", "Post title (required unless targeting only tiktok)")
	_ = cmd.MarkFlagRequired("user")
	if withPlatform {
		cmd.Flags().StringArrayVarP(&v.Platforms, "platform", "p", nil, "Target platform (repeatable)")
		_ = cmd.MarkFlagRequired("platform")
		registerStaticCompletions(cmd, "platform", api.PlatformNames())
		flagAlias(cmd.Flags(), "platform", "platforms")
	}
}

// parseTargetPlatforms resolves --platform values, decorating unknown names
// with a did-you-mean suggestion.
func parseTargetPlatforms(names []string) ([]api.Platform, error) {
	platforms, err := api.ParsePlatforms(names)
	if err == nil {
		return platforms, nil
	}
	structured := api.StructuredErrorFromError(err)
	if structured != nil && len(structured.Context) > 0 {
		if got, ok := structured.Context["got"].(string); ok {
			if suggestion := suggestPlatform(got, api.PlatformNames()); suggestion != "" {
				return nil, fmt.Errorf("%w (did you mean %q?)", err, suggestion)
			}
		}
	}
	return nil, err
}

// commonFlags holds the cross-platform options shared by every upload kind.
type commonFlags struct {
	Description     string
	FirstComment    string
	AltText         string
	ScheduledDate   string
	Timezone        string
	AddToQueue      bool
	MaxPostsPerSlot int
	AsyncUpload     bool
}

func addCommonFlags(cmd *cobra.Command, v *commonFlags) {
	cmd.Flags().StringVarP(&v.Description, "description", "d", "", "Post description/caption (platform titles override it where set)")
	cmd.Flags().StringVar(&v.FirstComment, "first-comment", "", "Comment posted right after publishing")
	cmd.Flags().StringVar(&v.AltText, "alt-text", "", "Accessibility alt text")
	cmd.Flags().StringVar(&v.ScheduledDate, "scheduled-date", "", "Publish later at this ISO 8601 time (e.g. 2026-12-25T10:00:00Z)")
	cmd.Flags().StringVar(&v.Timezone, "timezone", "", "IANA timezone for --scheduled-date (e.g. Europe/Madrid)")
	cmd.Flags().BoolVar(&v.AddToQueue, "add-to-queue", false, "Add to the account's posting queue instead of publishing now")
	cmd.Flags().IntVar(&v.MaxPostsPerSlot, "max-posts-per-slot", 0, "Queue slot capacity (with --add-to-queue)")
	cmd.Flags().BoolVar(&v.AsyncUpload, "async-upload", false, "Return a request_id immediately instead of waiting")
	flagAlias(cmd.Flags(), "first-comment", "fc")
	flagAlias(cmd.Flags(), "scheduled-date", "at")
}

func (v *commonFlags) options(cmd *cobra.Command) api.CommonOptions {
	return api.CommonOptions{
		Description:     v.Description,
		FirstComment:    v.FirstComment,
		AltText:         v.AltText,
		ScheduledDate:   v.ScheduledDate,
		Timezone:        v.Timezone,
		AddToQueue:      boolPtrIfChanged(cmd, "add-to-queue", v.AddToQueue),
		MaxPostsPerSlot: intPtrIfChanged(cmd, "max-posts-per-slot", v.MaxPostsPerSlot),
		AsyncUpload:     boolPtrIfChanged(cmd, "async-upload", v.AsyncUpload),
	}
}

// platformFlags holds every per-platform option flag. Which flags get
// registered depends on the upload kind; which options get sent depends on
// the --platform set.
type platformFlags struct {
	// tiktok
	TikTokTitle          string
	TikTokDescription    string
	TikTokPrivacy        string
	TikTokDisableComment bool
	TikTokDisableDuet    bool
	TikTokDisableStitch  bool
	TikTokCoverTimestamp int
	TikTokAIGC           bool
	TikTokPostMode       string
	TikTokBrandContent   bool
	TikTokBrandOrganic   bool
	TikTokAutoMusic      bool
	TikTokCoverIndex     int

	// instagram
	InstagramTitle         string
	InstagramFirstComment  string
	InstagramMediaType     string
	InstagramCollaborators []string
	InstagramUserTags      []string
	InstagramLocationID    string
	InstagramShareToFeed   bool
	InstagramCoverURL      string
	InstagramAudioName     string
	InstagramThumbOffset   string

	// youtube
	YouTubeTitle            string
	YouTubeDescription      string
	YouTubeFirstComment     string
	YouTubeTags             []string
	YouTubeCategoryID       string
	YouTubePrivacy          string
	YouTubeEmbeddable       bool
	YouTubeLicense          string
	YouTubePublicStats      bool
	YouTubeThumbnailURL     string
	YouTubeMadeForKids      bool
	YouTubeSyntheticMedia   bool
	YouTubeDefaultLanguage  string
	YouTubeDefaultAudioLang string
	YouTubeAllowedCountries []string
	YouTubeBlockedCountries []string
	YouTubePaidPlacement    bool
	YouTubeRecordingDate    string

	// linkedin
	LinkedInTitle       string
	LinkedInDescription string
	LinkedInVisibility  string
	LinkedInPageID      string
	LinkedInLinkURL     string

	// facebook
	FacebookTitle        string
	FacebookDescription  string
	FacebookFirstComment string
	FacebookPageID       string
	FacebookVideoState   string
	FacebookMediaType    string
	FacebookThumbnailURL string
	FacebookLinkURL      string

	// pinterest
	PinterestTitle         string
	PinterestDescription   string
	PinterestBoardID       string
	PinterestAltText       string
	PinterestLink          string
	PinterestCoverURL      string
	PinterestCoverType     string
	PinterestCoverData     string
	PinterestCoverKeyFrame int

	// x
	XTitle             string
	XFirstComment      string
	XReplySettings     string
	XNullcast          bool
	XQuoteTweetID      string
	XGeoPlaceID        string
	XSuperFollowers    bool
	XCommunityID       string
	XShareFollowers    bool
	XDMDeepLink        string
	XLongText          bool
	XTaggedUserIDs     []string
	XPlaceID           string
	XThreadLayout      string
	XPostURL           string
	XCardURI           string
	XPollOptions       []string
	XPollDuration      int
	XPollReplySettings string

	// threads
	ThreadsTitle        string
	ThreadsFirstComment string
	ThreadsLongText     bool
	ThreadsMediaLayout  string

	// reddit
	RedditFirstComment string
	RedditSubreddit    string
	RedditFlairID      string
	RedditLinkURL      string

	// bluesky
	BlueskyTitle        string
	BlueskyFirstComment string
	BlueskyLinkURL      string
}

type uploadKindFlags int

const (
	flagsVideo uploadKindFlags = iota
	flagsPhotos
	flagsText
)

// addPlatformFlags registers the per-platform option flags relevant to one
// upload kind. The flag surface mirrors the vendor's option matrix.
func addPlatformFlags(cmd *cobra.Command, v *platformFlags, kind uploadKindFlags) {
	f := cmd.Flags()
	media := kind == flagsVideo || kind == flagsPhotos

	if media {
		// tiktok
		f.StringVar(&v.TikTokTitle, "tiktok-title", "", "TikTok title override")
		f.StringVar(&v.TikTokDescription, "tiktok-description", "", "TikTok description override")
		f.BoolVar(&v.TikTokDisableComment, "tiktok-disable-comment", false, "Disable comments on TikTok")
		f.BoolVar(&v.TikTokBrandContent, "tiktok-brand-content", false, "Mark as paid partnership")
		f.BoolVar(&v.TikTokBrandOrganic, "tiktok-brand-organic", false, "Mark as organic brand content")
		if kind == flagsVideo {
			f.StringVar(&v.TikTokPrivacy, "tiktok-privacy-level", "", "TikTok privacy: PUBLIC_TO_EVERYONE|MUTUAL_FOLLOW_FRIENDS|FOLLOWER_OF_CREATOR|SELF_ONLY")
			f.BoolVar(&v.TikTokDisableDuet, "tiktok-disable-duet", false, "Disable duets")
			f.BoolVar(&v.TikTokDisableStitch, "tiktok-disable-stitch", false, "Disable stitches")
			f.IntVar(&v.TikTokCoverTimestamp, "tiktok-cover-timestamp", 0, "Cover frame timestamp in milliseconds")
			f.BoolVar(&v.TikTokAIGC, "tiktok-aigc", false, "Label as AI-generated content")
			f.StringVar(&v.TikTokPostMode, "tiktok-post-mode", "", "DIRECT_POST or MEDIA_UPLOAD (draft to inbox)")
		} else {
			f.BoolVar(&v.TikTokAutoMusic, "tiktok-auto-add-music", false, "Let TikTok add background music")
			f.IntVar(&v.TikTokCoverIndex, "tiktok-photo-cover-index", 0, "Photo to use as cover (0-based)")
		}

		// instagram
		f.StringVar(&v.InstagramTitle, "instagram-title", "", "Instagram caption override")
		f.StringVar(&v.InstagramFirstComment, "instagram-first-comment", "", "Instagram first comment override")
		f.StringVar(&v.InstagramMediaType, "instagram-media-type", "", "Instagram media type (video: REELS|STORIES; photos: IMAGE|STORIES)")
		f.StringSliceVar(&v.InstagramCollaborators, "instagram-collaborator", nil, "Invite a collaborator (repeatable)")
		f.StringSliceVar(&v.InstagramUserTags, "instagram-user-tag", nil, "Tag a user (repeatable)")
		f.StringVar(&v.InstagramLocationID, "instagram-location-id", "", "Instagram location ID")
		if kind == flagsVideo {
			f.BoolVar(&v.InstagramShareToFeed, "instagram-share-to-feed", false, "Also show the reel in the feed")
			f.StringVar(&v.InstagramCoverURL, "instagram-cover-url", "", "Reel cover image URL")
			f.StringVar(&v.InstagramAudioName, "instagram-audio-name", "", "Rename the reel's audio track")
			f.StringVar(&v.InstagramThumbOffset, "instagram-thumb-offset", "", "Thumbnail frame offset in milliseconds")
		}

		// pinterest
		f.StringVar(&v.PinterestTitle, "pinterest-title", "", "Pinterest title override")
		f.StringVar(&v.PinterestDescription, "pinterest-description", "", "Pinterest description override")
		f.StringVar(&v.PinterestBoardID, "pinterest-board-id", "", "Board to pin to (see 'pages pinterest')")
		f.StringVar(&v.PinterestAltText, "pinterest-alt-text", "", "Pin alt text")
		f.StringVar(&v.PinterestLink, "pinterest-link", "", "Pin destination link")
		if kind == flagsVideo {
			f.StringVar(&v.PinterestCoverURL, "pinterest-cover-image-url", "", "Video pin cover image URL")
			f.StringVar(&v.PinterestCoverType, "pinterest-cover-image-content-type", "", "Cover image MIME type for --pinterest-cover-image-data")
			f.StringVar(&v.PinterestCoverData, "pinterest-cover-image-data", "", "Base64 cover image data")
			f.IntVar(&v.PinterestCoverKeyFrame, "pinterest-cover-key-frame-time", 0, "Cover key frame time in milliseconds")
		}
	}

	if kind == flagsVideo {
		// youtube
		f.StringVar(&v.YouTubeTitle, "youtube-title", "", "YouTube title override")
		f.StringVar(&v.YouTubeDescription, "youtube-description", "", "YouTube description override")
		f.StringVar(&v.YouTubeFirstComment, "youtube-first-comment", "", "YouTube first comment override")
		f.StringSliceVar(&v.YouTubeTags, "youtube-tag", nil, "Video tag (repeatable)")
		f.StringVar(&v.YouTubeCategoryID, "youtube-category-id", "", "YouTube category ID (default 22, People & Blogs)")
		f.StringVar(&v.YouTubePrivacy, "youtube-privacy-status", "", "public|unlisted|private")
		f.BoolVar(&v.YouTubeEmbeddable, "youtube-embeddable", false, "Allow embedding on other sites")
		f.StringVar(&v.YouTubeLicense, "youtube-license", "", "youtube or creativeCommon")
		f.BoolVar(&v.YouTubePublicStats, "youtube-public-stats-viewable", false, "Show view counts publicly")
		f.StringVar(&v.YouTubeThumbnailURL, "youtube-thumbnail-url", "", "Custom thumbnail URL")
		f.BoolVar(&v.YouTubeMadeForKids, "youtube-made-for-kids", false, "Self-declare as made for kids")
		f.BoolVar(&v.YouTubeSyntheticMedia, "youtube-synthetic-media", false, "Declare realistic altered or synthetic content")
		f.StringVar(&v.YouTubeDefaultLanguage, "youtube-default-language", "", "Metadata language (BCP-47)")
		f.StringVar(&v.YouTubeDefaultAudioLang, "youtube-default-audio-language", "", "Audio language (BCP-47)")
		f.StringSliceVar(&v.YouTubeAllowedCountries, "youtube-allowed-countries", nil, "Restrict viewing to these country codes")
		f.StringSliceVar(&v.YouTubeBlockedCountries, "youtube-blocked-countries", nil, "Block viewing in these country codes")
		f.BoolVar(&v.YouTubePaidPlacement, "youtube-paid-product-placement", false, "Declare paid product placement")
		f.StringVar(&v.YouTubeRecordingDate, "youtube-recording-date", "", "Recording date (ISO 8601)")
	}

	// linkedin (all kinds)
	f.StringVar(&v.LinkedInTitle, "linkedin-title", "", "LinkedIn title override")
	f.StringVar(&v.LinkedInDescription, "linkedin-description", "", "LinkedIn description override")
	f.StringVar(&v.LinkedInVisibility, "linkedin-visibility", "", "PUBLIC|CONNECTIONS|LOGGED_IN|CONTAINER")
	f.StringVar(&v.LinkedInPageID, "linkedin-page-id", "", "Post as this organization page (see 'pages linkedin')")
	if kind == flagsText {
		f.StringVar(&v.LinkedInLinkURL, "linkedin-link-url", "", "Link to attach to the LinkedIn post")
	}

	// facebook
	f.StringVar(&v.FacebookTitle, "facebook-title", "", "Facebook title override")
	f.StringVar(&v.FacebookDescription, "facebook-description", "", "Facebook description override")
	f.StringVar(&v.FacebookFirstComment, "facebook-first-comment", "", "Facebook first comment override")
	f.StringVar(&v.FacebookPageID, "facebook-page-id", "", "Facebook page to post to (see 'pages facebook')")
	if kind == flagsVideo {
		f.StringVar(&v.FacebookVideoState, "facebook-video-state", "", "PUBLISHED or DRAFT")
		f.StringVar(&v.FacebookMediaType, "facebook-media-type", "", "REELS|STORIES|VIDEO")
		f.StringVar(&v.FacebookThumbnailURL, "facebook-thumbnail-url", "", "Thumbnail URL (VIDEO type only)")
	}
	if kind == flagsText {
		f.StringVar(&v.FacebookLinkURL, "facebook-link-url", "", "Link to attach to the Facebook post")
	}

	// x
	f.StringVar(&v.XTitle, "x-title", "", "X text override")
	f.StringVar(&v.XFirstComment, "x-first-comment", "", "X first reply override")
	f.StringVar(&v.XReplySettings, "x-reply-settings", "", "Who can reply: everyone|following|mentionedUsers|subscribers|verified")
	f.BoolVar(&v.XNullcast, "x-nullcast", false, "Promoted-only post (not shown in timeline)")
	f.StringVar(&v.XQuoteTweetID, "x-quote-tweet-id", "", "Quote this post ID")
	f.StringVar(&v.XGeoPlaceID, "x-geo-place-id", "", "Attach a geo place ID")
	f.BoolVar(&v.XSuperFollowers, "x-super-followers-only", false, "Restrict to super followers")
	f.StringVar(&v.XCommunityID, "x-community-id", "", "Post into this community")
	f.BoolVar(&v.XShareFollowers, "x-share-with-followers", false, "Also share a community post with followers")
	f.StringVar(&v.XDMDeepLink, "x-dm-deep-link", "", "Direct message deep link to append")
	f.BoolVar(&v.XLongText, "x-long-text-as-post", false, "Post long text natively instead of as an image")
	if kind == flagsText {
		f.StringVar(&v.XPostURL, "x-post-url", "", "URL to append to the post")
		f.StringVar(&v.XCardURI, "x-card-uri", "", "Card URI to attach")
		f.StringSliceVar(&v.XPollOptions, "x-poll-option", nil, "Poll choice, 2-4 total (repeatable)")
		f.IntVar(&v.XPollDuration, "x-poll-duration", 0, "Poll duration in minutes (5-10080)")
		f.StringVar(&v.XPollReplySettings, "x-poll-reply-settings", "", "Who can reply to the poll post")
	} else {
		f.StringSliceVar(&v.XTaggedUserIDs, "x-tagged-user-id", nil, "Tag a user ID in the media (repeatable)")
		f.StringVar(&v.XPlaceID, "x-place-id", "", "Media place ID")
		f.StringVar(&v.XThreadLayout, "x-thread-image-layout", "", "Split images across a thread, e.g. \"4,4\" or \"2,3,1\"")
	}

	// threads
	f.StringVar(&v.ThreadsTitle, "threads-title", "", "Threads text override")
	f.StringVar(&v.ThreadsFirstComment, "threads-first-comment", "", "Threads first reply override")
	f.BoolVar(&v.ThreadsLongText, "threads-long-text-as-post", false, "Post long text natively instead of as an image")
	if media {
		f.StringVar(&v.ThreadsMediaLayout, "threads-media-layout", "", "Split media across a thread, e.g. \"5,5\" or \"3,4,3\"")
	}

	if kind == flagsPhotos || kind == flagsText {
		// reddit
		f.StringVar(&v.RedditSubreddit, "reddit-subreddit", "", "Subreddit to post to (without r/)")
		f.StringVar(&v.RedditFlairID, "reddit-flair-id", "", "Post flair ID")
		f.StringVar(&v.RedditFirstComment, "reddit-first-comment", "", "Reddit first comment override")
		if kind == flagsText {
			f.StringVar(&v.RedditLinkURL, "reddit-link-url", "", "Create a link post to this URL")
		}
	}

	// bluesky
	f.StringVar(&v.BlueskyTitle, "bluesky-title", "", "Bluesky text override")
	f.StringVar(&v.BlueskyFirstComment, "bluesky-first-comment", "", "Bluesky first reply override")
	if kind == flagsText {
		f.StringVar(&v.BlueskyLinkURL, "bluesky-link-url", "", "External link embed URL")
	}
}

// options assembles the per-platform option structs from flag values. Only
// explicitly set boolean/int flags become pointers; everything else rides on
// the empty-is-omitted convention.
func (v *platformFlags) options(cmd *cobra.Command) api.PlatformOptions {
	return api.PlatformOptions{
		TikTok: &api.TikTokOptions{
			Title:              v.TikTokTitle,
			Description:        v.TikTokDescription,
			PrivacyLevel:       v.TikTokPrivacy,
			DisableComment:     boolPtrIfChanged(cmd, "tiktok-disable-comment", v.TikTokDisableComment),
			DisableDuet:        boolPtrIfChanged(cmd, "tiktok-disable-duet", v.TikTokDisableDuet),
			DisableStitch:      boolPtrIfChanged(cmd, "tiktok-disable-stitch", v.TikTokDisableStitch),
			CoverTimestamp:     intPtrIfChanged(cmd, "tiktok-cover-timestamp", v.TikTokCoverTimestamp),
			IsAIGC:             boolPtrIfChanged(cmd, "tiktok-aigc", v.TikTokAIGC),
			PostMode:           v.TikTokPostMode,
			BrandContentToggle: boolPtrIfChanged(cmd, "tiktok-brand-content", v.TikTokBrandContent),
			BrandOrganicToggle: boolPtrIfChanged(cmd, "tiktok-brand-organic", v.TikTokBrandOrganic),
			AutoAddMusic:       boolPtrIfChanged(cmd, "tiktok-auto-add-music", v.TikTokAutoMusic),
			PhotoCoverIndex:    intPtrIfChanged(cmd, "tiktok-photo-cover-index", v.TikTokCoverIndex),
		},
		Instagram: &api.InstagramOptions{
			Title:         v.InstagramTitle,
			FirstComment:  v.InstagramFirstComment,
			MediaType:     v.InstagramMediaType,
			Collaborators: v.InstagramCollaborators,
			UserTags:      v.InstagramUserTags,
			LocationID:    v.InstagramLocationID,
			ShareToFeed:   boolPtrIfChanged(cmd, "instagram-share-to-feed", v.InstagramShareToFeed),
			CoverURL:      v.InstagramCoverURL,
			AudioName:     v.InstagramAudioName,
			ThumbOffset:   v.InstagramThumbOffset,
		},
		YouTube: &api.YouTubeOptions{
			Title:                   v.YouTubeTitle,
			Description:             v.YouTubeDescription,
			FirstComment:            v.YouTubeFirstComment,
			Tags:                    v.YouTubeTags,
			CategoryID:              v.YouTubeCategoryID,
			PrivacyStatus:           v.YouTubePrivacy,
			Embeddable:              boolPtrIfChanged(cmd, "youtube-embeddable", v.YouTubeEmbeddable),
			License:                 v.YouTubeLicense,
			PublicStatsViewable:     boolPtrIfChanged(cmd, "youtube-public-stats-viewable", v.YouTubePublicStats),
			ThumbnailURL:            v.YouTubeThumbnailURL,
			SelfDeclaredMadeForKids: boolPtrIfChanged(cmd, "youtube-made-for-kids", v.YouTubeMadeForKids),
			ContainsSyntheticMedia:  boolPtrIfChanged(cmd, "youtube-synthetic-media", v.YouTubeSyntheticMedia),
			DefaultLanguage:         v.YouTubeDefaultLanguage,
			DefaultAudioLanguage:    v.YouTubeDefaultAudioLang,
			AllowedCountries:        v.YouTubeAllowedCountries,
			BlockedCountries:        v.YouTubeBlockedCountries,
			HasPaidProductPlacement: boolPtrIfChanged(cmd, "youtube-paid-product-placement", v.YouTubePaidPlacement),
			RecordingDate:           v.YouTubeRecordingDate,
		},
		LinkedIn: &api.LinkedInOptions{
			Title:        v.LinkedInTitle,
			Description:  v.LinkedInDescription,
			Visibility:   v.LinkedInVisibility,
			TargetPageID: v.LinkedInPageID,
			LinkURL:      v.LinkedInLinkURL,
		},
		Facebook: &api.FacebookOptions{
			Title:        v.FacebookTitle,
			Description:  v.FacebookDescription,
			FirstComment: v.FacebookFirstComment,
			PageID:       v.FacebookPageID,
			VideoState:   v.FacebookVideoState,
			MediaType:    v.FacebookMediaType,
			ThumbnailURL: v.FacebookThumbnailURL,
			LinkURL:      v.FacebookLinkURL,
		},
		Pinterest: &api.PinterestOptions{
			Title:                  v.PinterestTitle,
			Description:            v.PinterestDescription,
			BoardID:                v.PinterestBoardID,
			AltText:                v.PinterestAltText,
			Link:                   v.PinterestLink,
			CoverImageURL:          v.PinterestCoverURL,
			CoverImageContentType:  v.PinterestCoverType,
			CoverImageData:         v.PinterestCoverData,
			CoverImageKeyFrameTime: intPtrIfChanged(cmd, "pinterest-cover-key-frame-time", v.PinterestCoverKeyFrame),
		},
		X: &api.XOptions{
			Title:                 v.XTitle,
			FirstComment:          v.XFirstComment,
			ReplySettings:         v.XReplySettings,
			Nullcast:              boolPtrIfChanged(cmd, "x-nullcast", v.XNullcast),
			QuoteTweetID:          v.XQuoteTweetID,
			GeoPlaceID:            v.XGeoPlaceID,
			ForSuperFollowersOnly: boolPtrIfChanged(cmd, "x-super-followers-only", v.XSuperFollowers),
			CommunityID:           v.XCommunityID,
			ShareWithFollowers:    boolPtrIfChanged(cmd, "x-share-with-followers", v.XShareFollowers),
			DirectMessageDeepLink: v.XDMDeepLink,
			LongTextAsPost:        boolPtrIfChanged(cmd, "x-long-text-as-post", v.XLongText),
			TaggedUserIDs:         v.XTaggedUserIDs,
			PlaceID:               v.XPlaceID,
			ThreadImageLayout:     v.XThreadLayout,
			PostURL:               v.XPostURL,
			CardURI:               v.XCardURI,
			PollOptions:           v.XPollOptions,
			PollDuration:          intPtrIfChanged(cmd, "x-poll-duration", v.XPollDuration),
			PollReplySettings:     v.XPollReplySettings,
		},
		Threads: &api.ThreadsOptions{
			Title:             v.ThreadsTitle,
			FirstComment:      v.ThreadsFirstComment,
			LongTextAsPost:    boolPtrIfChanged(cmd, "threads-long-text-as-post", v.ThreadsLongText),
			ThreadMediaLayout: v.ThreadsMediaLayout,
		},
		Reddit: &api.RedditOptions{
			FirstComment: v.RedditFirstComment,
			Subreddit:    v.RedditSubreddit,
			FlairID:      v.RedditFlairID,
			LinkURL:      v.RedditLinkURL,
		},
		Bluesky: &api.BlueskyOptions{
			Title:        v.BlueskyTitle,
			FirstComment: v.BlueskyFirstComment,
			LinkURL:      v.BlueskyLinkURL,
		},
	}
}

func newUploadVideoCmd() *cobra.Command {
	var (
		targets  targetFlags
		common   commonFlags
		platform platformFlags
		video    string
	)

	cmd := &cobra.Command{
		Use:     "video",
		Aliases: []string{"v"},
		Short:   "Publish a video to multiple platforms",
		Example: strings.TrimSpace(`
  # Publish to TikTok and YouTube
  uploadpost upload video -u demo -t "Launch day" -p tiktok -p youtube --video ./launch.mp4

  # Remote video, scheduled
  uploadpost upload video -u demo -t "Teaser" -p instagram --video https://cdn.example.com/teaser.mp4 \
    --scheduled-date 2026-12-25T10:00:00Z --timezone Europe/Madrid
`),
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			platforms, err := parseTargetPlatforms(targets.Platforms)
			if err != nil {
				return err
			}
			req := api.VideoUpload{
				User:      targets.User,
				Title:     targets.Title,
				Platforms: platforms,
				Video:     video,
				Common:    common.options(cmd),
				Options:   platform.options(cmd),
			}
			form, err := req.BuildForm()
			if err != nil {
				return err
			}
			if done, err := maybeDryRun(cmd, formPreview("publish video", "POST /api/upload", form)); done {
				return err
			}
			client, err := getClient()
			if err != nil {
				return err
			}
			result, err := client.Uploads().Video(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printUploadResult(cmd, result)
		}),
	}

	addTargetFlags(cmd, &targets, true)
	cmd.Flags().StringVar(&video, "video", "", "Video file path or http(s) URL (required)")
	_ = cmd.MarkFlagRequired("video")
	addCommonFlags(cmd, &common)
	addPlatformFlags(cmd, &platform, flagsVideo)

	return cmd
}

func newUploadPhotosCmd() *cobra.Command {
	var (
		targets           targetFlags
		common            commonFlags
		platform          platformFlags
		photos            []string
		firstCommentMedia []string
	)

	cmd := &cobra.Command{
		Use:     "photos",
		Aliases: []string{"photo", "ph"},
		Short:   "Publish photos to multiple platforms",
		Example: strings.TrimSpace(`
  # Carousel on Instagram and a pin on Pinterest
  uploadpost upload photos -u demo -t "New collection" -p instagram -p pinterest \
    --photo ./one.jpg --photo ./two.jpg --pinterest-board-id BOARD

  # Mixed local and remote sources
  uploadpost upload photos -u demo -t "Recap" -p x --photo ./a.jpg --photo https://cdn.example.com/b.jpg
`),
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			platforms, err := parseTargetPlatforms(targets.Platforms)
			if err != nil {
				return err
			}
			req := api.PhotosUpload{
				User:              targets.User,
				Title:             targets.Title,
				Platforms:         platforms,
				Photos:            photos,
				FirstCommentMedia: firstCommentMedia,
				Common:            common.options(cmd),
				Options:           platform.options(cmd),
			}
			form, err := req.BuildForm()
			if err != nil {
				return err
			}
			if done, err := maybeDryRun(cmd, formPreview("publish photos", "POST /api/upload_photos", form)); done {
				return err
			}
			client, err := getClient()
			if err != nil {
				return err
			}
			result, err := client.Uploads().Photos(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printUploadResult(cmd, result)
		}),
	}

	addTargetFlags(cmd, &targets, true)
	cmd.Flags().StringArrayVar(&photos, "photo", nil, "Photo file path or http(s) URL, 1-10 (repeatable)")
	_ = cmd.MarkFlagRequired("photo")
	cmd.Flags().StringArrayVar(&firstCommentMedia, "first-comment-media", nil, "Media to attach to the first comment (repeatable)")
	addCommonFlags(cmd, &common)
	addPlatformFlags(cmd, &platform, flagsPhotos)

	return cmd
}

func newUploadTextCmd() *cobra.Command {
	var (
		targets           targetFlags
		common            commonFlags
		platform          platformFlags
		linkURL           string
		firstCommentMedia []string
	)

	cmd := &cobra.Command{
		Use:     "text",
		Aliases: []string{"tx"},
		Short:   "Publish a text post",
		Long:    "Publish a text post to x, linkedin, facebook, threads, reddit, or bluesky.",
		Example: strings.TrimSpace(`
  # Same text everywhere
  uploadpost upload text -u demo -t "We are live!" -p x -p bluesky -p threads

  # Link post on Reddit with a flair
  uploadpost upload text -u demo -t "Show and tell" -p reddit \
    --reddit-subreddit golang --reddit-link-url https://example.com/post
`),
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			platforms, err := parseTargetPlatforms(targets.Platforms)
			if err != nil {
				return err
			}
			req := api.TextUpload{
				User:              targets.User,
				Title:             targets.Title,
				Platforms:         platforms,
				LinkURL:           linkURL,
				FirstCommentMedia: firstCommentMedia,
				Common:            common.options(cmd),
				Options:           platform.options(cmd),
			}
			form, err := req.BuildForm()
			if err != nil {
				return err
			}
			if done, err := maybeDryRun(cmd, formPreview("publish text post", "POST /api/upload_text", form)); done {
				return err
			}
			client, err := getClient()
			if err != nil {
				return err
			}
			result, err := client.Uploads().Text(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printUploadResult(cmd, result)
		}),
	}

	addTargetFlags(cmd, &targets, true)
	cmd.Flags().StringVar(&linkURL, "link-url", "", "Link to attach where the platform accepts one (per-platform link flags override it)")
	cmd.Flags().StringArrayVar(&firstCommentMedia, "first-comment-media", nil, "Media to attach to the first comment (repeatable)")
	addCommonFlags(cmd, &common)
	addPlatformFlags(cmd, &platform, flagsText)

	return cmd
}

func newUploadDocumentCmd() *cobra.Command {
	var (
		targets  targetFlags
		common   commonFlags
		document string

		linkedinTitle       string
		linkedinDescription string
		linkedinVisibility  string
		linkedinPageID      string
	)

	cmd := &cobra.Command{
		Use:     "document",
		Aliases: []string{"doc"},
		Short:   "Publish a document to LinkedIn",
		Long:    "Publish a PDF, DOC, DOCX, PPT, or PPTX document. Documents are LinkedIn only.",
		Example: strings.TrimSpace(`
  uploadpost upload document -u demo -t "Q3 report" --document ./report.pdf
  uploadpost upload document -u demo -t "Deck" --document ./deck.pptx --linkedin-page-id 12345
`),
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			req := api.DocumentUpload{
				User:     targets.User,
				Title:    targets.Title,
				Document: document,
				Common:   common.options(cmd),
				LinkedIn: &api.LinkedInOptions{
					Title:        linkedinTitle,
					Description:  linkedinDescription,
					Visibility:   linkedinVisibility,
					TargetPageID: linkedinPageID,
				},
			}
			form, err := req.BuildForm()
			if err != nil {
				return err
			}
			if done, err := maybeDryRun(cmd, formPreview("publish document", "POST /api/upload_document", form)); done {
				return err
			}
			client, err := getClient()
			if err != nil {
				return err
			}
			result, err := client.Uploads().Document(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printUploadResult(cmd, result)
		}),
	}

	addTargetFlags(cmd, &targets, false)
	_ = cmd.MarkFlagRequired("title")
	cmd.Flags().StringVar(&document, "document", "", "Document file path or http(s) URL (required)")
	_ = cmd.MarkFlagRequired("document")
	addCommonFlags(cmd, &common)
	cmd.Flags().StringVar(&linkedinTitle, "linkedin-title", "", "LinkedIn title override")
	cmd.Flags().StringVar(&linkedinDescription, "linkedin-description", "", "LinkedIn description override")
	cmd.Flags().StringVar(&linkedinVisibility, "linkedin-visibility", "", "PUBLIC|CONNECTIONS|LOGGED_IN|CONTAINER")
	cmd.Flags().StringVar(&linkedinPageID, "linkedin-page-id", "", "Post as this organization page")

	return cmd
}

// printUploadResult renders a publish response. JSON mode prints the raw
// response; text mode summarizes per-platform outcomes when present.
func printUploadResult(cmd *cobra.Command, result api.Result) error {
	if isJSON(cmd) {
		return printJSON(cmd, result)
	}

	if requestID, ok := result["request_id"].(string); ok && requestID != "" {
		printIfNotQuiet(cmd, "Upload accepted. Request ID: %s\n", requestID)
		printIfNotQuiet(cmd, "Check progress with: uploadpost status %s\n", requestID)
		return nil
	}
	if jobID, ok := result["job_id"].(string); ok && jobID != "" {
		printIfNotQuiet(cmd, "Scheduled. Job ID: %s\n", jobID)
		printIfNotQuiet(cmd, "Manage with: uploadpost schedule list\n")
		return nil
	}

	if results, ok := result["results"].(map[string]any); ok && len(results) > 0 {
		w := newTabWriterFromCmd(cmd)
		_, _ = fmt.Fprintln(w, "PLATFORM\tSTATUS\tURL")
		for platform, raw := range results {
			status := "ok"
			postURL := ""
			if entry, ok := raw.(map[string]any); ok {
				if ok2, isBool := entry["success"].(bool); isBool && !ok2 {
					status = "failed"
					if msg, ok := entry["error"].(string); ok && msg != "" {
						status = "failed: " + msg
					}
				}
				if u, ok := entry["url"].(string); ok {
					postURL = u
				} else if u, ok := entry["post_url"].(string); ok {
					postURL = u
				}
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", platform, status, postURL)
		}
		return w.Flush()
	}

	printIfNotQuiet(cmd, "Upload complete.\n")
	return nil
}
