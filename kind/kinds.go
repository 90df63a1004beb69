package kind

var (
	// ProfileMetadata is an event type that stores user profile data, pet
	// names, bio, lightning address, etc.
	ProfileMetadata = &T{0}
	// TextNote is a standard short text note of plain text a la twitter
	TextNote = &T{1}
	// RecommendRelay is the deprecated relay recommendation.
	RecommendRelay = &T{2}
	// FollowList an event containing a list of pubkeys of users that should be
	// shown as follows in a timeline.
	FollowList             = &T{3}
	EncryptedDirectMessage = &T{4}
	EventDeletion          = &T{5}
	Repost                 = &T{6}
	Reaction               = &T{7}
	BadgeAward             = &T{8}
	// Seal is an event that wraps a PrivateDirectMessage and is placed inside a
	// GiftWrap
	Seal                 = &T{13}
	PrivateDirectMessage = &T{14}
	GenericRepost        = &T{16}
	ChannelCreation      = &T{40}
	ChannelMetadata      = &T{41}
	ChannelMessage       = &T{42}
	ChannelHideMessage   = &T{43}
	ChannelMuteUser      = &T{44}
	OpenTimestamps       = &T{1040}
	GiftWrap             = &T{1059}
	FileMetadata         = &T{1063}
	LiveChatMessage      = &T{1311}
	Reporting            = &T{1984}
	// Label is an event type has L and l tags, namespace and type - NIP-32
	Label      = &T{1985}
	ZapRequest = &T{9734}
	Zap        = &T{9735}
	Highlights = &T{9882}
	// ReplaceableStart is the first of the replaceable range.
	ReplaceableStart  = &T{10000}
	MuteList          = &T{10000}
	PinList           = &T{10001}
	RelayListMetadata = &T{10002}
	BookmarkList      = &T{10003}
	DMRelaysList      = &T{10050}
	NWCWalletInfo     = &T{13194}
	// ReplaceableEnd is one past the end of the replaceable range.
	ReplaceableEnd = &T{20000}
	// EphemeralStart is the first of the ephemeral range.
	EphemeralStart       = &T{20000}
	ClientAuthentication = &T{22242}
	NWCWalletRequest     = &T{23194}
	NWCWalletResponse    = &T{23195}
	NostrConnect         = &T{24133}
	HTTPAuth             = &T{27235}
	// EphemeralEnd is one past the end of the ephemeral range.
	EphemeralEnd = &T{30000}
	// ParameterizedReplaceableStart is the first of the addressable range.
	ParameterizedReplaceableStart = &T{30000}
	FollowSets                    = &T{30000}
	GenericLists                  = &T{30001}
	RelaySets                     = &T{30002}
	BookmarkSets                  = &T{30003}
	ProfileBadges                 = &T{30008}
	BadgeDefinition               = &T{30009}
	LongFormContent               = &T{30023}
	DraftLongFormContent          = &T{30024}
	// ApplicationSpecificData is an event type stores data about application
	// configuration, such as the settings of a client.
	ApplicationSpecificData = &T{30078}
	LiveEvent               = &T{30311}
	ClassifiedListing       = &T{30402}
	CalendarEventRSVP       = &T{31925}
	HandlerRecommendation   = &T{31989}
	HandlerInformation      = &T{31990}
	CommunityDefinition     = &T{34550}
	// ParameterizedReplaceableEnd is one past the end of the addressable range.
	ParameterizedReplaceableEnd = &T{40000}
)

// Map is the name registry of well known kinds. It is not modified after
// package initialization.
var Map = map[uint16]string{
	ProfileMetadata.K:         "ProfileMetadata",
	TextNote.K:                "TextNote",
	RecommendRelay.K:          "RecommendRelay",
	FollowList.K:              "FollowList",
	EncryptedDirectMessage.K:  "EncryptedDirectMessage",
	EventDeletion.K:           "EventDeletion",
	Repost.K:                  "Repost",
	Reaction.K:                "Reaction",
	BadgeAward.K:              "BadgeAward",
	Seal.K:                    "Seal",
	PrivateDirectMessage.K:    "PrivateDirectMessage",
	GenericRepost.K:           "GenericRepost",
	ChannelCreation.K:         "ChannelCreation",
	ChannelMetadata.K:         "ChannelMetadata",
	ChannelMessage.K:          "ChannelMessage",
	ChannelHideMessage.K:      "ChannelHideMessage",
	ChannelMuteUser.K:         "ChannelMuteUser",
	OpenTimestamps.K:          "OpenTimestamps",
	GiftWrap.K:                "GiftWrap",
	FileMetadata.K:            "FileMetadata",
	LiveChatMessage.K:         "LiveChatMessage",
	Reporting.K:               "Reporting",
	Label.K:                   "Label",
	ZapRequest.K:              "ZapRequest",
	Zap.K:                     "Zap",
	Highlights.K:              "Highlights",
	MuteList.K:                "MuteList",
	PinList.K:                 "PinList",
	RelayListMetadata.K:       "RelayListMetadata",
	BookmarkList.K:            "BookmarkList",
	DMRelaysList.K:            "DMRelaysList",
	NWCWalletInfo.K:           "NWCWalletInfo",
	ClientAuthentication.K:    "ClientAuthentication",
	NWCWalletRequest.K:        "NWCWalletRequest",
	NWCWalletResponse.K:       "NWCWalletResponse",
	NostrConnect.K:            "NostrConnect",
	HTTPAuth.K:                "HTTPAuth",
	FollowSets.K:              "FollowSets",
	GenericLists.K:            "GenericLists",
	RelaySets.K:               "RelaySets",
	BookmarkSets.K:            "BookmarkSets",
	ProfileBadges.K:           "ProfileBadges",
	BadgeDefinition.K:         "BadgeDefinition",
	LongFormContent.K:         "LongFormContent",
	DraftLongFormContent.K:    "DraftLongFormContent",
	ApplicationSpecificData.K: "ApplicationSpecificData",
	LiveEvent.K:               "LiveEvent",
	ClassifiedListing.K:       "ClassifiedListing",
	CalendarEventRSVP.K:       "CalendarEventRSVP",
	HandlerRecommendation.K:   "HandlerRecommendation",
	HandlerInformation.K:      "HandlerInformation",
	CommunityDefinition.K:     "CommunityDefinition",
}
