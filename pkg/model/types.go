package model

import internalmodel "github.com/goliatone/go-layout/internal/model"

// FieldType re-exports the internal FieldType enumeration.
type FieldType = internalmodel.FieldType

const (
	FieldTypeCheckbox = internalmodel.FieldTypeCheckbox
	FieldTypeDate     = internalmodel.FieldTypeDate
	FieldTypeDatetime = internalmodel.FieldTypeDatetime
	FieldTypeEmail    = internalmodel.FieldTypeEmail
	FieldTypeFile     = internalmodel.FieldTypeFile
	FieldTypeHidden   = internalmodel.FieldTypeHidden
	FieldTypeInput    = internalmodel.FieldTypeInput
	FieldTypeInteger  = internalmodel.FieldTypeInteger
	FieldTypeLabel    = internalmodel.FieldTypeLabel
	FieldTypeList     = internalmodel.FieldTypeList
	FieldTypeLookup   = internalmodel.FieldTypeLookup
	FieldTypeMonth    = internalmodel.FieldTypeMonth
	FieldTypeMulti    = internalmodel.FieldTypeMulti
	FieldTypeNumber   = internalmodel.FieldTypeNumber
	FieldTypeNumeric  = internalmodel.FieldTypeNumeric
	FieldTypePassword = internalmodel.FieldTypePassword
	FieldTypeSelect   = internalmodel.FieldTypeSelect
	FieldTypeText     = internalmodel.FieldTypeText
	FieldTypeTextarea = internalmodel.FieldTypeTextarea
	FieldTypeTime     = internalmodel.FieldTypeTime
	FieldTypeURL      = internalmodel.FieldTypeURL
)

const (
	ExtendedColumnsKey   = internalmodel.ExtendedColumnsKey
	ExtendedColumnPrefix = internalmodel.ExtendedColumnPrefix
	BaseErrorKey         = internalmodel.BaseErrorKey
)

type BehaviourKind = internalmodel.BehaviourKind

const (
	BehaviourChangeAffects        = internalmodel.BehaviourChangeAffects
	BehaviourEnableOnChange       = internalmodel.BehaviourEnableOnChange
	BehaviourNotify               = internalmodel.BehaviourNotify
	BehaviourPopulateFromSelected = internalmodel.BehaviourPopulateFromSelected
)

type SelectOption = internalmodel.SelectOption
type FieldConfig = internalmodel.FieldConfig
type NotifyRule = internalmodel.NotifyRule
type SelectedRule = internalmodel.SelectedRule
type BehaviourRule = internalmodel.BehaviourRule
type PageOptions = internalmodel.PageOptions
type PageConfig = internalmodel.PageConfig

// PresentFieldAsLabel derives caption text from a field name.
func PresentFieldAsLabel(name string) string {
	return internalmodel.PresentFieldAsLabel(name)
}
