package discord

// Friendly message constants for Discord responses
const (
	// Backpacks
	MsgBackpackPrivate = "🔒 **Private Backpack**\nThat player's inventory is not publicly visible."
	MsgPlayerNotFound  = "👤 **Player Not Found**\nCheck the SteamID or vanity name and try again."

	// Items & schema
	MsgItemNotFound       = "❓ **Item Not Found**\nNo catalog entry with that defindex."
	MsgSchemaUnavailable  = "⚠️ **Schema Unavailable**\nSteam returned an unusable item schema. Try again later."
	MsgSteamDown          = "⚠️ **Steam Not Answering**\nThe Steam WebAPI is unavailable right now. Try again in a minute."
	MsgBackpackUnreadable = "⚠️ **Backpack Unreadable**\nSteam returned an unusable backpack for that player."

	MsgGenericError = "❌ Something went wrong."
)
