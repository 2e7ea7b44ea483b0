package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// AntaresMatch represents one requested match: a level to load and the
// set of admirals to seat, reconciled into a Kubernetes Job running
// cmd/antares-replay (or a future dedicated match server) to completion.
//
// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,shortName=amatch
// +kubebuilder:printcolumn:name="Level",type=string,JSONPath=`.spec.levelName`
// +kubebuilder:printcolumn:name="Phase",type=string,JSONPath=`.status.phase`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`
type AntaresMatch struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   AntaresMatchSpec   `json:"spec"`
	Status AntaresMatchStatus `json:"status,omitempty"`
}

// AntaresMatchSpec names the level to load and how many human/computer
// admirals to seat.
type AntaresMatchSpec struct {
	LevelName    string `json:"levelName"`
	LevelDataRef string `json:"levelDataRef"`
	AdmiralCount int32  `json:"admiralCount"`
	RandomSeed   uint32 `json:"randomSeed,omitempty"`
}

// AntaresMatchStatus mirrors the underlying Job's progress plus the
// match's own outcome once it finishes.
type AntaresMatchStatus struct {
	Phase       string `json:"phase,omitempty"`
	JobName     string `json:"jobName,omitempty"`
	Winner      int32  `json:"winner,omitempty"`
	Message     string `json:"message,omitempty"`
}

// +kubebuilder:object:root=true
type AntaresMatchList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []AntaresMatch `json:"items"`
}

func init() {
	SchemeBuilder.Register(&AntaresMatch{}, &AntaresMatchList{})
}
