// Package v1alpha1 contains the AntaresMatch API types the match
// operator reconciles.
//
// +kubebuilder:object:generate=true
// +groupName=antares.engine
package v1alpha1

import (
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/scheme"
)

// GroupVersion is the API group and version used for every type in this
// package.
var GroupVersion = schema.GroupVersion{Group: "antares.engine", Version: "v1alpha1"}

// SchemeBuilder registers types with a scheme.
var SchemeBuilder = &scheme.Builder{GroupVersion: GroupVersion}

// AddToScheme adds every registered type to s.
var AddToScheme = SchemeBuilder.AddToScheme
