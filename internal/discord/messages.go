package discord

// Friendly message constants for Discord responses
const (
	MsgItemNotFound        = "❓ **Item Not Found**\nMaybe check the spelling?"
	MsgPlannedItemNotFound = "📋 **Not In Your Plan**\nUse /plan to see what you track."
	MsgInvalidLotSize      = "📦 **Invalid Lot**\nLots come in 1, 10 or 100."
	MsgAPIUnavailable      = "🔌 **Planner Unavailable**\nTry again in a moment."

	MsgEmptyPlan     = "Your plan is empty. Add something with /plan-add."
	MsgNothingNeeded = "Nothing to gather, your stock covers the plan."

	MsgGenericError = "❌ Something went wrong."
)

// Embed colors
const (
	ColorPlan     = 0x3498db
	ColorNeeds    = 0xe67e22
	ColorShopping = 0x2ecc71
)
