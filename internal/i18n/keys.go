// Package i18n holds the UI message catalogs and language resolution.
package i18n

// Key identifies a catalog message.
type Key string

// Status and failure messages, one per screen action.
const (
	MsgFetchFailed   Key = "error.fetch_failed"
	MsgAddFailed     Key = "error.add_failed"
	MsgUpdateFailed  Key = "error.update_failed"
	MsgDeleteFailed  Key = "error.delete_failed"
	MsgRequired      Key = "error.required"
	MsgUserNotFound  Key = "error.user_not_found"
	MsgAdded         Key = "success.added"
	MsgUpdated       Key = "success.updated"
	MsgDeleted       Key = "success.deleted"
	MsgConfirmDelete Key = "confirm.delete"
)

// Page labels.
const (
	TitleApp          Key = "title.app"
	TitleList         Key = "title.list"
	TitleAdd          Key = "title.add"
	TitleDetail       Key = "title.detail"
	TitleEdit         Key = "title.edit"
	TitleConfirm      Key = "title.confirm"
	LabelName         Key = "label.name"
	LabelEmail        Key = "label.email"
	LabelID           Key = "label.id"
	LabelCreatedAt    Key = "label.created_at"
	LabelCurrent      Key = "label.current"
	LabelNewValues    Key = "label.new_values"
	LabelChanged      Key = "label.changed"
	PlaceholderName   Key = "placeholder.name"
	PlaceholderEmail  Key = "placeholder.email"
	ActionAdd         Key = "action.add"
	ActionSubmitAdd   Key = "action.submit_add"
	ActionSave        Key = "action.save"
	ActionCancel      Key = "action.cancel"
	ActionEdit        Key = "action.edit"
	ActionDelete      Key = "action.delete"
	ActionRefresh     Key = "action.refresh"
	ActionConfirm     Key = "action.confirm"
	ActionBackToList  Key = "action.back_to_list"
	ActionBackDetail  Key = "action.back_to_detail"
	EmptyList         Key = "list.empty"
	EmptyListHint     Key = "list.empty_hint"
	RedirectNotice    Key = "redirect.notice"
	NoChangesNotice   Key = "edit.no_changes"
	DetailDescription Key = "detail.description"
)
