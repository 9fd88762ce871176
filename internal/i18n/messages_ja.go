package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Japanese

	set := func(key Key, msg string) {
		message.SetString(lang, string(key), msg)
	}

	set(MsgFetchFailed, "ユーザーの取得に失敗しました")
	set(MsgAddFailed, "ユーザーの追加に失敗しました")
	set(MsgUpdateFailed, "ユーザーの更新に失敗しました")
	set(MsgDeleteFailed, "ユーザーの削除に失敗しました")
	set(MsgRequired, "名前とメールアドレスは必須です")
	set(MsgUserNotFound, "ユーザーが見つかりません")
	set(MsgAdded, "ユーザーが正常に追加されました！")
	set(MsgUpdated, "ユーザーが正常に更新されました！")
	set(MsgDeleted, "ユーザーを削除しました")
	set(MsgConfirmDelete, "このユーザーを削除しますか？")

	set(TitleApp, "ユーザー管理")
	set(TitleList, "ユーザー一覧")
	set(TitleAdd, "新しいユーザーを追加")
	set(TitleDetail, "ユーザー詳細")
	set(TitleEdit, "ユーザー編集")
	set(TitleConfirm, "削除の確認")
	set(LabelName, "名前")
	set(LabelEmail, "メールアドレス")
	set(LabelID, "ユーザーID")
	set(LabelCreatedAt, "作成日")
	set(LabelCurrent, "現在の情報")
	set(LabelNewValues, "新しい情報を入力")
	set(LabelChanged, "変更: \"%s\" → \"%s\"")
	set(PlaceholderName, "田中太郎")
	set(PlaceholderEmail, "example@example.com")
	set(ActionAdd, "追加")
	set(ActionSubmitAdd, "ユーザーを追加")
	set(ActionSave, "変更を保存")
	set(ActionCancel, "キャンセル")
	set(ActionEdit, "編集")
	set(ActionDelete, "削除")
	set(ActionRefresh, "更新")
	set(ActionConfirm, "削除する")
	set(ActionBackToList, "ユーザー管理に戻る")
	set(ActionBackDetail, "ユーザー詳細に戻る")
	set(EmptyList, "まだユーザーが登録されていません")
	set(EmptyListHint, "フォームから新しいユーザーを追加してください")
	set(RedirectNotice, "%d秒後に移動します...")
	set(NoChangesNotice, "変更がない場合は保存ボタンが無効になります")
	set(DetailDescription, "登録されているユーザーの情報です")
}
