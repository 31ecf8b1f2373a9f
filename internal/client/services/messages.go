package services

// Notification texts.
const (
	MsgLoadedFromStorage = "Data loaded from local storage"
	MsgLoadedFromAPI     = "Data fetched from API"
	MsgFetchFailed       = "Failed to fetch data from API"

	MsgAdded        = "User data added"
	MsgAddFailed    = "Failed to add user data"
	MsgUpdated      = "User data updated"
	MsgUpdateFailed = "Failed to update user data"
	MsgDeleted      = "User data deleted"
	MsgDeleteFailed = "Failed to delete user data"

	MsgReset       = "Local storage cleared"
	MsgResetFailed = "Failed to clear local storage"
)
