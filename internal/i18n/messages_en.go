package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	set := func(key Key, msg string) {
		message.SetString(lang, string(key), msg)
	}

	set(MsgFetchFailed, "Failed to fetch users")
	set(MsgAddFailed, "Failed to add user")
	set(MsgUpdateFailed, "Failed to update user")
	set(MsgDeleteFailed, "Failed to delete user")
	set(MsgRequired, "Name and email are required")
	set(MsgUserNotFound, "User not found")
	set(MsgAdded, "User added successfully!")
	set(MsgUpdated, "User updated successfully!")
	set(MsgDeleted, "User deleted")
	set(MsgConfirmDelete, "Delete this user?")

	set(TitleApp, "User Management")
	set(TitleList, "Users")
	set(TitleAdd, "Add a new user")
	set(TitleDetail, "User details")
	set(TitleEdit, "Edit user")
	set(TitleConfirm, "Confirm deletion")
	set(LabelName, "Name")
	set(LabelEmail, "Email")
	set(LabelID, "User ID")
	set(LabelCreatedAt, "Created")
	set(LabelCurrent, "Current values")
	set(LabelNewValues, "Enter new values")
	set(LabelChanged, "Change: \"%s\" → \"%s\"")
	set(PlaceholderName, "Taro Tanaka")
	set(PlaceholderEmail, "example@example.com")
	set(ActionAdd, "Add")
	set(ActionSubmitAdd, "Add user")
	set(ActionSave, "Save changes")
	set(ActionCancel, "Cancel")
	set(ActionEdit, "Edit")
	set(ActionDelete, "Delete")
	set(ActionRefresh, "Refresh")
	set(ActionConfirm, "Delete")
	set(ActionBackToList, "Back to user management")
	set(ActionBackDetail, "Back to user details")
	set(EmptyList, "No users registered yet")
	set(EmptyListHint, "Add a new user with the form")
	set(RedirectNotice, "Redirecting in %d seconds...")
	set(NoChangesNotice, "Saving is disabled until a value changes")
	set(DetailDescription, "Registered user information")
}
