// Package codebehind generates the C# companions of a markup document: the
// partial code-behind class and the view-model.
//
// Key capabilities:
//   - code-behind with the markup-load constructor, optional view-model
//     assignment, and one empty stub per discovered event handler
//   - view-model in either the classic INotifyPropertyChanged idiom or the
//     CommunityToolkit.Mvvm attribute idiom
//   - bindable property types inferred from the property name; command
//     paths become ICommand members
//
// Member order follows the first-discovery order of the normalize pass, so
// regenerating from the same scene always yields the same file.
package codebehind
